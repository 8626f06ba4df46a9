package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) service.QRCodeService {
	return NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}})
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, 256, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateMembershipQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		png, err := newTestService(size, "M").GenerateMembershipQR(&service.MembershipCard{
			MembershipID: uuid.New(),
			UserID:       uuid.New(),
			ExpiresAt:    time.Now().Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	}
}

func TestQRCodeService_ParseMembershipQR(t *testing.T) {
	svc := newTestService(256, "M")
	card := &service.MembershipCard{
		MembershipID: uuid.New(),
		UserID:       uuid.New(),
		ExpiresAt:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(cardPayload{
		Type:         "membership",
		MembershipID: card.MembershipID.String(),
		UserID:       card.UserID.String(),
		ExpiresAt:    "2026-05-01T10:00:00Z",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseMembershipQR(" " + string(payload) + "\n")

	require.NoError(t, err)
	assert.Equal(t, card.MembershipID, parsed.MembershipID)
	assert.Equal(t, card.UserID, parsed.UserID)
	assert.True(t, card.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestQRCodeService_ParseMembershipQR_Invalid(t *testing.T) {
	svc := newTestService(256, "M")
	id := uuid.NewString()

	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"wrong type", `{"type":"subscription","membership_id":"` + id + `","user_id":"` + id + `","expires_at":"2026-01-01T00:00:00Z"}`},
		{"bad membership id", `{"type":"membership","membership_id":"nope","user_id":"` + id + `","expires_at":"2026-01-01T00:00:00Z"}`},
		{"bad user id", `{"type":"membership","membership_id":"` + id + `","user_id":"nope","expires_at":"2026-01-01T00:00:00Z"}`},
		{"bad expiry", `{"type":"membership","membership_id":"` + id + `","user_id":"` + id + `","expires_at":"tomorrow"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseMembershipQR(tt.data)
			assert.Error(t, err)
		})
	}
}
