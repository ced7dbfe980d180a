package model

import "fmt"

// Variant selects how many fields each investment carries and how they are
// displayed.
type Variant string

const (
	// VariantSimple renders company, amount and equity on a single line.
	VariantSimple Variant = "simple"
	// VariantEnhanced renders every deal field as a multi-line block.
	VariantEnhanced Variant = "enhanced"
)

// ParseVariant validates a variant name. An empty name selects VariantEnhanced.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "":
		return VariantEnhanced, nil
	case VariantSimple, VariantEnhanced:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant %q (want %q or %q)", s, VariantSimple, VariantEnhanced)
	}
}

// Investor is one known participant. An investor with a Column is read from
// the "<Column> Investment Amount" family of columns; one with a GuestKey is
// matched against the guest name column. Both may be empty, in which case the
// profile is emitted with no investments.
type Investor struct {
	Slug     string `yaml:"slug" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Role     string `yaml:"role"`
	Image    string `yaml:"image" validate:"omitempty,url"`
	Column   string `yaml:"column,omitempty"`
	GuestKey string `yaml:"guest_key,omitempty"`
}

// IsPanel reports whether the investor has dedicated per-investor columns.
func (i Investor) IsPanel() bool { return i.Column != "" }

// IsGuest reports whether the investor is resolved by guest name matching.
func (i Investor) IsGuest() bool { return i.GuestKey != "" }

// Roster is the closed, ordered set of investor identities. Profile order in
// the generated module follows Investors.
type Roster struct {
	Investors []Investor `yaml:"investors" validate:"dive"`
}
