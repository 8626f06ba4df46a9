package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	files := fstest.MapFS{
		"0002_deal_reviews.sql": {Data: []byte("SELECT 2;")},
		"0001_init.sql":         {Data: []byte("SELECT 1;")},
		"0003_next.sql":         {Data: []byte("SELECT 3;")},
		"README.md":             {Data: []byte("not a migration")},
	}

	t.Run("fresh database gets everything in order", func(t *testing.T) {
		pending, err := pendingMigrations(files, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"0001_init.sql", "0002_deal_reviews.sql", "0003_next.sql"}, pending)
	})

	t.Run("applied versions are skipped", func(t *testing.T) {
		pending, err := pendingMigrations(files, []string{"0001_init", "0003_next"})
		require.NoError(t, err)
		assert.Equal(t, []string{"0002_deal_reviews.sql"}, pending)
	})
}

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "0001_init", migrationVersion("0001_init.sql"))
	assert.Equal(t, "0002_deal_reviews", migrationVersion("sub/0002_deal_reviews.sql"))
}
