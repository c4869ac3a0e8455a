package invoice

import "context"

type InvoiceService interface {
	List(ctx context.Context) ([]InvoiceListItem, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetByID(ctx context.Context, id int) (InvoiceDetailResponse, error)
	Update(ctx context.Context, id int, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id int) error
}
