package models

import (
	"errors"
	"testing"
)

func TestParseOrderStatus(t *testing.T) {
	valid := []string{"Pending", "Confirmed", "Shipped", "Delivered", "Cancelled"}
	for _, s := range valid {
		status, err := ParseOrderStatus(s)
		if err != nil {
			t.Fatalf("ParseOrderStatus(%q): unexpected error %v", s, err)
		}
		if string(status) != s {
			t.Fatalf("ParseOrderStatus(%q) = %q", s, status)
		}
	}

	for _, s := range []string{"", "pending", "Shipped ", "Lost"} {
		if _, err := ParseOrderStatus(s); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("ParseOrderStatus(%q): expected ErrInvalidOrderStatus, got %v", s, err)
		}
	}
}
