package qrcode

import (
	"encoding/json"
	"strings"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/constants"
	"perkpass/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// cardPayload is the JSON encoded into a membership card.
type cardPayload struct {
	Type         string `json:"type"`
	MembershipID string `json:"membership_id"`
	UserID       string `json:"user_id"`
	ExpiresAt    string `json:"expires_at"`
}

// NewQRCodeService builds the renderer from the QR section of the config.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateMembershipQR renders the card as a PNG.
func (s *qrcodeService) GenerateMembershipQR(card *service.MembershipCard) ([]byte, error) {
	data, err := json.Marshal(cardPayload{
		Type:         constants.QRTypeMembership,
		MembershipID: card.MembershipID.String(),
		UserID:       card.UserID.String(),
		ExpiresAt:    card.ExpiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal membership card")
	}

	code, err := qrcode.New(string(data), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code as PNG")
	}

	return png, nil
}

// ParseMembershipQR decodes scanned card text. It checks structure only; whether the
// membership exists and is active is decided against the database.
func (s *qrcodeService) ParseMembershipQR(qrData string) (*service.MembershipCard, error) {
	var payload cardPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal membership card")
	}

	if payload.Type != constants.QRTypeMembership {
		return nil, errors.Errorf("invalid QR code type: %q", payload.Type)
	}

	membershipID, err := uuid.Parse(payload.MembershipID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse membership id")
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user id")
	}

	expiresAt, err := time.Parse(time.RFC3339, payload.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse expiry")
	}

	return &service.MembershipCard{
		MembershipID: membershipID,
		UserID:       userID,
		ExpiresAt:    expiresAt,
	}, nil
}
