package transform

// AcceptedMarker is the Accepted Offer value of a finalized deal. The cell
// must match it exactly, whitespace included.
const AcceptedMarker = "1"

// Shared deal columns.
const (
	colStartup       = "Startup Name"
	colAccepted      = "Accepted Offer"
	colIndustry      = "Industry"
	colSeason        = "Season Number"
	colDealValuation = "Deal Valuation"
	colRevenue       = "Yearly Revenue"
	colStartedIn     = "Started in"
	colCity          = "Pitchers City"
	colState         = "Pitchers State"
	colOriginalAsk   = "Original Ask Amount"
)

// Guest columns, shared by every guest investor.
const (
	colGuestName   = "Invested Guest Name"
	colGuestAmount = "Guest Investment Amount"
	colGuestEquity = "Guest Investment Equity"
	colGuestDebt   = "Guest Debt Amount"
)

// contribution names the three columns describing one party's stake.
type contribution struct {
	Amount string
	Equity string
	Debt   string
}

func panelColumns(prefix string) contribution {
	return contribution{
		Amount: prefix + " Investment Amount",
		Equity: prefix + " Investment Equity",
		Debt:   prefix + " Debt Amount",
	}
}

var guestColumns = contribution{
	Amount: colGuestAmount,
	Equity: colGuestEquity,
	Debt:   colGuestDebt,
}

var dealColumns = []string{
	colStartup,
	colAccepted,
	colIndustry,
	colSeason,
	colDealValuation,
	colRevenue,
	colStartedIn,
	colCity,
	colState,
	colOriginalAsk,
}
