package betterment

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// sharesTolerance is how far the derived share count may drift from the
// statement's printed one before a warning is logged.
var sharesTolerance = decimal.RequireFromString("0.001")

// parseDate interprets three tokens like ["May", "7", "2015"] as a date.
func parseDate(ref *Reference, mon, day, year string) (Date, error) {
	month, ok := ref.Month(mon)
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown month %q", ErrLineNotRecognized, mon)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad day %q", ErrLineNotRecognized, day)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad year %q", ErrLineNotRecognized, year)
	}
	date := NewDate(y, month, d)
	// NewDate normalizes out-of-range components; a "Feb 30" is not a date.
	if date.Year() != y || date.Month() != month || date.Day() != d {
		return Date{}, fmt.Errorf("%w: invalid date %s %s %s", ErrLineNotRecognized, mon, day, year)
	}
	return date, nil
}

// parseDividendPayment interprets a dividend payment detail line:
//
//	["May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"]
//
// that is date, ticker, description words, amount.
func parseDividendPayment(ref *Reference, line []string) (fragment, error) {
	if len(line) < 5 {
		return fragment{}, fmt.Errorf("%w: too short for a dividend payment", ErrLineNotRecognized)
	}
	date, err := parseDate(ref, line[0], line[1], line[2])
	if err != nil {
		return fragment{}, err
	}
	ticker := line[3]
	if _, err := ref.TickerName(ticker); err != nil {
		return fragment{}, fmt.Errorf("%w: %w", ErrLineNotRecognized, err)
	}
	amount, err := ParseMoney(line[len(line)-1])
	if err != nil {
		return fragment{}, fmt.Errorf("%w: bad amount %q", ErrLineNotRecognized, line[len(line)-1])
	}
	return fragment{
		tx: Transaction{
			Type:        TypeDivPay,
			Date:        date,
			Ticker:      ticker,
			Description: strings.Join(line[4:len(line)-1], " "),
			Amount:      amount,
		},
		hasDate: true,
		hasType: true,
		hasDesc: true,
	}, nil
}

// parseShareActivity interprets share activity lines. The tricky part is
// that a logical transaction comes in two shapes: a full line
//
//	["Apr", "2", "2015", "Dividend", "Reinvestment", "Stocks", "/", "VTV", "$83.55", "0.008", "$0.66", "0.592", "$49.48"]
//
// and a continuation line that omits the date and description:
//
//	["Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"]
//
// The returned fragment records which contextual fields were present; the
// walker inherits the missing ones from the previous transaction.
func parseShareActivity(ref *Reference, line []string) (fragment, error) {
	// the slash preceded by the asset class marker identifies the lines we want
	slash := slices.Index(line, "/")
	if slash <= 0 || (line[slash-1] != "Stocks" && line[slash-1] != "Bonds") {
		return fragment{}, fmt.Errorf("%w: no asset class marker", ErrLineNotRecognized)
	}

	if slash > 1 {
		// Header half: date, description words, then the detail half.
		if slash-1 < 3 {
			return fragment{}, fmt.Errorf("%w: no room for a date", ErrLineNotRecognized)
		}
		date, err := parseDate(ref, line[0], line[1], line[2])
		if err != nil {
			return fragment{}, err
		}
		desc := line[3 : slash-1]
		header := fragment{
			tx: Transaction{
				Date:        date,
				Type:        subType(desc),
				Description: strings.Join(desc, " "),
			},
			hasDate: true,
			hasType: true,
			hasDesc: true,
		}
		detail, err := parseShareActivity(ref, line[slash-1:])
		if err != nil {
			return fragment{}, err
		}
		return header.merge(detail), nil
	}

	// Detail half: [Stocks|Bonds, /, Ticker, Price, PrintedShares, Amount, RunningShares, RunningValue].
	// The last two fields (running totals for that security) are ignored.
	if len(line) < 6 {
		return fragment{}, fmt.Errorf("%w: too short for share detail", ErrLineNotRecognized)
	}
	ticker := line[2]
	if _, err := ref.TickerName(ticker); err != nil {
		return fragment{}, fmt.Errorf("%w: %w", ErrLineNotRecognized, err)
	}
	price, err := ParseMoney(line[3])
	if err != nil || price.IsZero() {
		return fragment{}, fmt.Errorf("%w: bad share price %q", ErrLineNotRecognized, line[3])
	}
	amount, err := ParseMoney(line[5])
	if err != nil {
		return fragment{}, fmt.Errorf("%w: bad amount %q", ErrLineNotRecognized, line[5])
	}

	// We derive the share count from amount and price instead of trusting the
	// printed one, which is rounded to 3 digits on the statement.
	shares := amount.DivPrice(price)
	if printed, err := decimal.NewFromString(line[4]); err != nil {
		return fragment{}, fmt.Errorf("%w: bad printed shares %q", ErrLineNotRecognized, line[4])
	} else if shares.Decimal().Sub(printed.Abs()).Abs().GreaterThanOrEqual(sharesTolerance) {
		log.Printf("wonky number of shares for %s: statement says %s, derived %s", ticker, printed, shares)
	}

	rawShares, err := rawQuotient(rawMoney(line[5]), rawMoney(line[3]))
	if err != nil {
		return fragment{}, fmt.Errorf("%w: %w", ErrLineNotRecognized, err)
	}

	return fragment{
		tx: Transaction{
			Ticker:        ticker,
			SharePrice:    price,
			Amount:        amount,
			Shares:        shares,
			RawSharePrice: rawMoney(line[3]),
			RawAmount:     rawMoney(line[5]),
			RawShares:     rawShares,
		},
	}, nil
}

// subType classifies the header description words into a transaction type.
func subType(desc []string) Type {
	switch {
	case slices.Contains(desc, "Reinvestment"):
		return TypeDivBuy
	case slices.Contains(desc, "Deposit"):
		return TypeBuy
	case slices.Contains(desc, "Fee"):
		return TypeFeeSell
	case slices.Contains(desc, "Transfer"):
		return TypeTransfer
	default:
		return TypeUnknown
	}
}

// rawQuotient derives the sign-preserving share count for the traceability
// columns.
func rawQuotient(amount, price string) (string, error) {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return "", err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return "", err
	}
	if p.IsZero() {
		return "", errors.New("zero share price")
	}
	return a.Div(p).StringFixed(sharesPrecision), nil
}
