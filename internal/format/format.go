// Package format turns parsed deal values into the display strings used by
// the generated module. Amounts in the pitch table are in lakh; anything of
// 100 lakh or more is shown in crore.
package format

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sharkfolio/sharkgen/internal/model"
)

const (
	rupee     = "₹"
	zeroDebt  = rupee + "0"
	croreUnit = "Cr"
)

var lakhPerCrore = decimal.NewFromInt(100)

// Style holds the variant-specific display conventions.
type Style struct {
	LakhUnit string // suffix for amounts below one crore
	NoEquity string // shown when equity is blank
}

// StyleFor returns the display conventions for a variant.
func StyleFor(v model.Variant) Style {
	if v == model.VariantSimple {
		return Style{LakhUnit: "Lakhs", NoEquity: "Undisclosed"}
	}
	return Style{LakhUnit: "L", NoEquity: model.NotAvailable}
}

// Currency renders a lakh amount: "₹1.5 Cr" from 150, "₹45 L" from 45.
// Blank cells become N/A and unparseable text is passed through.
func (s Style) Currency(m model.Money) string {
	if m.IsBlank() {
		return model.NotAvailable
	}
	if !m.Parsed {
		return m.Raw
	}
	if m.Value.Abs().GreaterThanOrEqual(lakhPerCrore) {
		return rupee + crore(m.Value) + " " + croreUnit
	}
	return rupee + m.Value.String() + " " + s.LakhUnit
}

// crore renders a lakh amount in crore to one decimal place. Rounding applies
// to the nearest float64 of the quotient, so 105 gives "1.1" and 115 gives "1.1".
func crore(lakh decimal.Decimal) string {
	return strconv.FormatFloat(lakh.InexactFloat64()/100, 'f', 1, 64)
}

// Equity appends a percent sign, or returns the style's placeholder when blank.
func (s Style) Equity(p model.Percent) string {
	if p.IsBlank() {
		return s.NoEquity
	}
	return p.Raw + "%"
}

// Debt is Currency, except that a blank debt means no debt at all.
func (s Style) Debt(m model.Money) string {
	if m.IsBlank() {
		return zeroDebt
	}
	return s.Currency(m)
}

// Location joins city and state, or returns N/A unless both are known.
func Location(city, state string) string {
	if !known(city) || !known(state) {
		return model.NotAvailable
	}
	return city + ", " + state
}

func known(s string) bool {
	return s != "" && s != model.NotAvailable
}
