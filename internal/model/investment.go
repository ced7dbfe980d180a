package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is substituted for missing or blank source fields.
const NotAvailable = "N/A"

// Money is a monetary cell from the pitch table, expressed in lakh.
type Money struct {
	Raw    string          // trimmed cell text; "" when blank
	Value  decimal.Decimal // meaningful only when Parsed
	Parsed bool
}

// ParseMoney reads a cell. Blank cells and the N/A sentinel yield an unparsed
// Money with an empty Raw; unparseable text is kept in Raw.
func ParseMoney(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" || s == NotAvailable {
		return Money{}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Raw: s}
	}
	return Money{Raw: s, Value: v, Parsed: true}
}

// IsBlank reports whether the source cell was empty.
func (m Money) IsBlank() bool { return m.Raw == "" }

// IsPositive reports whether the cell parsed to a value greater than zero.
func (m Money) IsPositive() bool { return m.Parsed && m.Value.IsPositive() }

// Percent is an equity cell kept as entered, without the percent sign.
type Percent struct {
	Raw string
}

// ParsePercent trims a cell into a Percent.
func ParsePercent(s string) Percent {
	return Percent{Raw: strings.TrimSpace(s)}
}

// IsBlank reports whether the source cell was empty.
func (p Percent) IsBlank() bool { return p.Raw == "" }

// Investment is one investor's participation in one accepted deal. Numeric
// fields keep their parsed values; display strings are produced when the
// module is rendered.
type Investment struct {
	Company       string
	Industry      string
	Season        string
	Amount        Money
	Equity        Percent
	Debt          Money
	DealValuation Money
	YearlyRevenue Money
	StartedIn     string
	City          string
	State         string
	OriginalAsk   Money
}

// Profile is an investor together with their investments in row order.
type Profile struct {
	Investor
	Investments []Investment
}
