package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in       string
		raw      string
		parsed   bool
		positive bool
	}{
		{"150", "150", true, true},
		{" 45.5 ", "45.5", true, true},
		{"0", "0", true, false},
		{"-3", "-3", true, false},
		{"", "", false, false},
		{"   ", "", false, false},
		{"N/A", "", false, false},
		{"ten", "ten", false, false},
	}
	for _, tt := range tests {
		m := ParseMoney(tt.in)
		assert.Equal(t, tt.raw, m.Raw, "ParseMoney(%q).Raw", tt.in)
		assert.Equal(t, tt.parsed, m.Parsed, "ParseMoney(%q).Parsed", tt.in)
		assert.Equal(t, tt.positive, m.IsPositive(), "ParseMoney(%q).IsPositive", tt.in)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	assert.NoError(t, err)
	assert.Equal(t, VariantEnhanced, v)

	v, err = ParseVariant("simple")
	assert.NoError(t, err)
	assert.Equal(t, VariantSimple, v)

	_, err = ParseVariant("deluxe")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestInvestorKinds(t *testing.T) {
	panel := Investor{Slug: "aman-gupta", Column: "Aman"}
	guest := Investor{Slug: "kunal-bahl", GuestKey: "Kunal"}
	idle := Investor{Slug: "ghazal-alagh"}

	assert.True(t, panel.IsPanel())
	assert.False(t, panel.IsGuest())
	assert.True(t, guest.IsGuest())
	assert.False(t, guest.IsPanel())
	assert.False(t, idle.IsPanel())
	assert.False(t, idle.IsGuest())
}
