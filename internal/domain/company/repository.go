package company

import "context"

type CompanyRepository interface {
	// List returns every company ordered by name.
	List(ctx context.Context) ([]Company, error)
	GetByCode(ctx context.Context, code string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, code string, name string, description string) (Company, error)
	Delete(ctx context.Context, code string) error
	// ListInvoiceIDs returns the ids of the company's invoices in ascending order.
	ListInvoiceIDs(ctx context.Context, code string) ([]int, error)
}
