package postgres

import (
	"context"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	SQL  string
	Vars []any
}

// newDryRunDB builds statements against the postgres dialect without a server
// and records every statement the query and update chains produce.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=perkpass dbname=perkpass sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var captured []capturedStatement
	capture := func(tx *gorm.DB) {
		captured = append(captured, capturedStatement{SQL: tx.Statement.SQL.String(), Vars: tx.Statement.Vars})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))

	return db, &captured
}

func TestDealRepository_ListListable_SelectsActiveApprovedNewestFirst(t *testing.T) {
	db, captured := newDryRunDB(t)

	_, err := NewDealRepository(db).ListListable(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `FROM "deals"`)
	assert.Contains(t, stmt.SQL, `"deals"."status" = $1 AND "deals"."approval_status" = $2`)
	assert.Contains(t, stmt.SQL, `ORDER BY "deals"."created_at" DESC`)
	assert.Equal(t, []any{string(entity.DealStatusActive), string(entity.ApprovalApproved)}, stmt.Vars)
}

func TestDealRepository_ListByApproval_OldestFirst(t *testing.T) {
	db, captured := newDryRunDB(t)

	_, err := NewDealRepository(db).ListByApproval(context.Background(), entity.ApprovalPending)
	require.NoError(t, err)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `"deals"."approval_status" = $1`)
	assert.Contains(t, stmt.SQL, `ORDER BY "deals"."created_at"`)
	assert.NotContains(t, stmt.SQL, "DESC")
	assert.Equal(t, []any{string(entity.ApprovalPending)}, stmt.Vars)
}

func TestDealRepository_Update_WritesContentColumnsOnly(t *testing.T) {
	db, captured := newDryRunDB(t)
	deal := &entity.Deal{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Title:          "Free coffee",
		Status:         entity.DealStatusInactive,
		ApprovalStatus: entity.ApprovalPending,
	}

	// Dry runs affect no rows.
	err := NewDealRepository(db).Update(context.Background(), deal)
	assert.ErrorIs(t, err, repository.ErrDealNotFound)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `UPDATE "deals" SET`)
	assert.Contains(t, stmt.SQL, `"approval_status"=`)
	assert.Contains(t, stmt.SQL, `"title"=`)
	assert.Contains(t, stmt.SQL, `WHERE "deals"."id" = `)
	assert.NotContains(t, stmt.SQL, `"status"=`)
	assert.NotContains(t, stmt.SQL, `"business_id"=`)
}

func TestMembershipRepository_HasActive_ComparesExpiryInclusively(t *testing.T) {
	db, captured := newDryRunDB(t)
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewMembershipRepository(db).HasActive(context.Background(), userID, now)
	require.NoError(t, err)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `FROM "memberships"`)
	assert.Contains(t, stmt.SQL, `"memberships"."user_id" = $1 AND "memberships"."expires_at" >= $2`)
	assert.Contains(t, stmt.SQL, "LIMIT $3")
	require.Len(t, stmt.Vars, 3)
	assert.Equal(t, userID, stmt.Vars[0])
	assert.Equal(t, now, stmt.Vars[1])
}

func TestMembershipRepository_TotalsByCampaign_GroupsByCampaign(t *testing.T) {
	db, captured := newDryRunDB(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	_, err := NewMembershipRepository(db).TotalsByCampaign(context.Background(), ids)
	require.NoError(t, err)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `"memberships"."campaign_id" IN ($1,$2)`)
	assert.Contains(t, stmt.SQL, `GROUP BY "memberships"."campaign_id"`)
	assert.Equal(t, []any{ids[0], ids[1]}, stmt.Vars)
}

func TestMembershipRepository_TotalsByCampaign_NoCampaignsSkipsQuery(t *testing.T) {
	db, captured := newDryRunDB(t)

	totals, err := NewMembershipRepository(db).TotalsByCampaign(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, totals)
	assert.Empty(t, *captured)
}

func TestCampaignRepository_ListOpen_BoundsDateWindow(t *testing.T) {
	db, captured := newDryRunDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewCampaignRepository(db).ListOpen(context.Background(), now, 20)
	require.NoError(t, err)

	require.NotEmpty(t, *captured)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `"campaigns"."status" = $1`)
	assert.Contains(t, stmt.SQL, `("campaigns"."start_date" IS NULL OR "campaigns"."start_date" <= $2)`)
	assert.Contains(t, stmt.SQL, `("campaigns"."end_date" IS NULL OR "campaigns"."end_date" >= $3)`)
	assert.Contains(t, stmt.SQL, `ORDER BY "campaigns"."created_at" DESC`)
	assert.Equal(t, string(entity.CampaignStatusActive), stmt.Vars[0])
}
