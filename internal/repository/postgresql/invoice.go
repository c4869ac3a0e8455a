package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type invoiceRepositoryImpl struct {
	db database.Querier
}

func NewInvoiceRepository(db database.Querier) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	return inv, err
}

// List implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) List(ctx context.Context) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []invoice.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	return invoices, nil
}

// GetByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id int) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return scanInvoice(q.QueryRow(ctx, query, id))
}

// Create implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Create(ctx context.Context, compCode string, amt decimal.Decimal) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns
	return scanInvoice(q.QueryRow(ctx, query, compCode, amt))
}

// Update implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Update(ctx context.Context, id int, amt decimal.Decimal, paid bool, paidDate *time.Time) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING ` + invoiceColumns
	return scanInvoice(q.QueryRow(ctx, query, amt, paid, paidDate, id))
}

// Delete implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int
	return q.QueryRow(ctx, `DELETE FROM invoices WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
}
