package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "zero", cents: 0, expected: "$0.00"},
		{name: "under a dollar", cents: 5, expected: "$0.05"},
		{name: "thousands separator", cents: 123456, expected: "$1,234.56"},
		{name: "millions", cents: 100000000, expected: "$1,000,000.00"},
		{name: "negative", cents: -2550, expected: "-$25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCents(tt.cents); got != tt.expected {
				t.Fatalf("FormatCents(%d) = %s, want %s", tt.cents, got, tt.expected)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	t.Parallel()

	first := HashToken("refresh-token")
	if len(first) != 64 {
		t.Fatalf("HashToken length = %d, want 64", len(first))
	}
	if first != HashToken("refresh-token") {
		t.Fatal("HashToken must be deterministic")
	}
	if first == HashToken("other-token") {
		t.Fatal("different tokens must not share a hash")
	}
}
