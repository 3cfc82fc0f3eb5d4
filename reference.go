package betterment

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// Reference holds the lookup tables a statement parse depends on: ticker to
// full security name, month abbreviation to month, and goal header phrase to
// goal. It is injectable so unknown tickers or new goal labelings can be
// added without a code change.
type Reference struct {
	tickers map[string]string
	months  map[string]time.Month
	goals   map[string]Goal
}

// NewReference returns an empty Reference.
func NewReference() *Reference {
	return &Reference{
		tickers: make(map[string]string),
		months:  make(map[string]time.Month),
		goals:   make(map[string]Goal),
	}
}

// DefaultReference returns the tables for the securities and goals observed
// on real statements.
func DefaultReference() *Reference {
	r := NewReference()

	for ticker, name := range map[string]string{
		"BNDX": "Total International Bond ETF",
		"VBR":  "Vanguard Small-Cap Value ETF",
		"VTI":  "Vanguard Total Stock Market ETF",
		"VTV":  "Vanguard Value ETF",
		"LQD":  "iShares iBoxx $ Investment Grade Corporate Bond ETF",
		"VEA":  "FTSE Developed Markets ETF",
		"VWO":  "Vanguard FTSE Emerging Markets ETF",
		"MUB":  "Municipal Bonds ETF",
		"VWOB": "Vanguard Emerging Markets Government Bond ETF",
		"VOE":  "Vanguard Mid-Cap Value ETF",
		"VTIP": "Vanguard Short-Term Inflation-Protected Securities ETF",
		"SHV":  "iShares Short Treasury Bond ETF",
	} {
		r.AddTicker(ticker, name)
	}

	for i := time.January; i <= time.December; i++ {
		r.months[i.String()[:3]] = i
	}

	// Normal headers, plus the title-cased "... Goal" variant that
	// non-quarterly statements mislabel goals with.
	r.AddGoal("BUILD WEALTH", GoalBuildWealth)
	r.AddGoal("Build Wealth Goal", GoalBuildWealth)
	r.AddGoal("SAFETY NET", GoalSafetyNet)
	r.AddGoal("Safety Net Goal", GoalSafetyNet)

	return r
}

// AddTicker registers a ticker and its full security name.
func (r *Reference) AddTicker(ticker, name string) { r.tickers[ticker] = name }

// AddGoal registers a goal header phrase (tokens joined by single spaces).
func (r *Reference) AddGoal(header string, goal Goal) { r.goals[header] = goal }

// TickerName resolves a ticker to its full security name. An absent ticker
// is an UnknownTickerError; classifiers downgrade it to a recognized
// failure, serializers surface it.
func (r *Reference) TickerName(ticker string) (string, error) {
	name, ok := r.tickers[ticker]
	if !ok {
		return "", &UnknownTickerError{Ticker: ticker}
	}
	return name, nil
}

// Month resolves a three-letter month abbreviation such as "May".
func (r *Reference) Month(abbr string) (time.Month, bool) {
	m, ok := r.months[abbr]
	return m, ok
}

// goalFor resolves a joined header phrase to a goal.
func (r *Reference) goalFor(header string) (Goal, bool) {
	g, ok := r.goals[header]
	return g, ok
}

// Tickers yields the known tickers and names in sorted ticker order.
func (r *Reference) Tickers() iter.Seq2[string, string] {
	keys := slices.Sorted(maps.Keys(r.tickers))
	return func(yield func(string, string) bool) {
		for _, k := range keys {
			if !yield(k, r.tickers[k]) {
				return
			}
		}
	}
}
