package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTaxID(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"person tax id", "11122233344", true},
		{"company tax id", "11222333000181", true},
		{"too short", "1112223334", false},
		{"between person and company length", "111222333441", false},
		{"too long", "112223330001812", false},
		{"formatted person id", "111.222.333-44", false},
		{"formatted company id", "11.222.333/0001-81", false},
		{"letters", "1112223334a", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidTaxID(tc.value))
		})
	}
}
