package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amt is a JSON number on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

const DateLayout = "2006-01-02"

type Invoice struct {
	ID       int
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// PaidDateAfter returns the paid_date the invoice holds once its paid flag is set to paid.
// Unpaid -> paid stamps today, paid -> unpaid clears it, and an unchanged flag keeps the stored value.
func (i Invoice) PaidDateAfter(paid bool, today time.Time) *time.Time {
	switch {
	case !i.Paid && paid:
		d := truncateToDate(today)
		return &d
	case i.Paid && !paid:
		return nil
	default:
		return i.PaidDate
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
