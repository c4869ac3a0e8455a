package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceRepository interface {
	// List returns every invoice ordered by id.
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id int) (Invoice, error)
	// Create inserts an unpaid invoice; the store stamps add_date.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (Invoice, error)
	Update(ctx context.Context, id int, amt decimal.Decimal, paid bool, paidDate *time.Time) (Invoice, error)
	Delete(ctx context.Context, id int) error
}
