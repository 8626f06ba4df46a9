package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMembership_IsActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "expires next year", expiresAt: now.AddDate(1, 0, 0), want: true},
		{name: "expires exactly now", expiresAt: now, want: true},
		{name: "expired one second ago", expiresAt: now.Add(-time.Second), want: false},
		{name: "expired last year", expiresAt: now.AddDate(-1, 0, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Membership{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, m.IsActiveAt(now))
		})
	}
}
