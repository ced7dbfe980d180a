// Package transform aggregates accepted pitches into per-investor profiles.
package transform

import (
	"log/slog"

	"github.com/sharkfolio/sharkgen/internal/model"
	"github.com/sharkfolio/sharkgen/internal/roster"
	"github.com/sharkfolio/sharkgen/internal/source"
)

// Skip records a contribution dropped because its amount was not a number.
type Skip struct {
	Slug   string
	Line   int
	Column string
	Value  string
}

// Stats summarizes one pass over the table.
type Stats struct {
	Rows     int
	Accepted int
	Entries  int
	Skipped  []Skip // in row order
}

// SkippedBySlug counts skipped contributions per investor.
func (s Stats) SkippedBySlug() map[string]int {
	counts := make(map[string]int)
	for _, sk := range s.Skipped {
		counts[sk.Slug]++
	}
	return counts
}

// Result is the aggregated table.
type Result struct {
	Profiles []model.Profile // roster order
	Stats    Stats
}

// Transformer turns pitch rows into investor profiles.
type Transformer struct {
	roster *roster.Service
	logger *slog.Logger
}

// New creates a Transformer over a validated roster.
func New(rs *roster.Service, logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{roster: rs, logger: logger}
}

// Run makes a single pass over tbl. Rows that are not accepted deals are
// ignored. Every panel investor or matched guest whose amount is a positive
// number gets one investment for the row; blank, zero and negative amounts
// are not investments. Amounts that do not parse are dropped and reported in
// Stats.Skipped.
func (t *Transformer) Run(tbl *source.Table) *Result {
	t.reportMissingColumns(tbl)

	investors := t.roster.All()
	profiles := make([]model.Profile, len(investors))
	for i, inv := range investors {
		profiles[i] = model.Profile{Investor: inv}
	}

	res := &Result{Profiles: profiles}
	panel := t.roster.Panel()

	for _, row := range tbl.Rows {
		res.Stats.Rows++
		if row.Raw(colAccepted) != AcceptedMarker {
			continue
		}
		res.Stats.Accepted++

		deal := dealFromRow(row)

		for _, inv := range panel {
			t.contribute(res, inv, row, panelColumns(inv.Column), deal)
		}

		for _, inv := range t.roster.MatchGuests(row.Value(colGuestName)) {
			t.contribute(res, inv, row, guestColumns, deal)
		}
	}

	t.logger.Debug("transform complete",
		slog.Int("rows", res.Stats.Rows),
		slog.Int("accepted", res.Stats.Accepted),
		slog.Int("entries", res.Stats.Entries),
		slog.Int("skipped", len(res.Stats.Skipped)))
	return res
}

func (t *Transformer) contribute(res *Result, inv model.Investor, row source.Row, cols contribution, deal model.Investment) {
	amount := model.ParseMoney(row.Value(cols.Amount))
	if amount.IsBlank() {
		return
	}
	if !amount.Parsed {
		res.Stats.Skipped = append(res.Stats.Skipped, Skip{
			Slug:   inv.Slug,
			Line:   row.Line,
			Column: cols.Amount,
			Value:  amount.Raw,
		})
		t.logger.Warn("skipping unparseable investment amount",
			slog.String("investor", inv.Slug),
			slog.Int("line", row.Line),
			slog.String("column", cols.Amount),
			slog.String("value", amount.Raw))
		return
	}
	if !amount.IsPositive() {
		return
	}

	entry := deal
	entry.Amount = amount
	entry.Equity = model.ParsePercent(row.Value(cols.Equity))
	entry.Debt = model.ParseMoney(row.Value(cols.Debt))

	i := t.roster.Index(inv.Slug)
	res.Profiles[i].Investments = append(res.Profiles[i].Investments, entry)
	res.Stats.Entries++
}

func dealFromRow(row source.Row) model.Investment {
	return model.Investment{
		Company:       row.Get(colStartup),
		Industry:      row.Get(colIndustry),
		Season:        row.Get(colSeason),
		DealValuation: model.ParseMoney(row.Value(colDealValuation)),
		YearlyRevenue: model.ParseMoney(row.Value(colRevenue)),
		StartedIn:     row.Get(colStartedIn),
		City:          row.Get(colCity),
		State:         row.Get(colState),
		OriginalAsk:   model.ParseMoney(row.Value(colOriginalAsk)),
	}
}

func (t *Transformer) reportMissingColumns(tbl *source.Table) {
	want := append([]string{}, dealColumns...)
	for _, inv := range t.roster.Panel() {
		want = append(want, panelColumns(inv.Column).Amount)
	}
	want = append(want, colGuestName, colGuestAmount)

	if missing := tbl.MissingColumns(want); len(missing) > 0 {
		t.logger.Debug("input lacks expected columns", slog.Any("columns", missing))
	}
}
