package service

import (
	"time"

	"github.com/google/uuid"
)

// MembershipCard is the payload encoded into a membership QR code.
type MembershipCard struct {
	MembershipID uuid.UUID
	UserID       uuid.UUID
	ExpiresAt    time.Time
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMembershipQR renders a membership card as a PNG QR code.
	GenerateMembershipQR(card *MembershipCard) ([]byte, error)

	// ParseMembershipQR decodes the text scanned from a membership QR code.
	ParseMembershipQR(qrData string) (*MembershipCard, error)
}
