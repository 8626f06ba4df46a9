package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type IdentityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. ID references users.id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
