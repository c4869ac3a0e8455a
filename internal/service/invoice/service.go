package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/sqlerr"
	"github.com/jackc/pgx/v5"
)

type InvoiceServiceImpl struct {
	invoiceRepo invoice.InvoiceRepository
	companyRepo company.CompanyRepository
	now         func() time.Time
}

// List implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) List(ctx context.Context) ([]invoice.InvoiceListItem, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.InvoiceListItem, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, invoice.InvoiceListItem{ID: inv.ID, CompCode: inv.CompCode})
	}
	return items, nil
}

// GetByID implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id int) (invoice.InvoiceDetailResponse, error) {
	inv, err := s.getInvoice(ctx, id)
	if err != nil {
		return invoice.InvoiceDetailResponse{}, err
	}

	owner, err := s.companyRepo.GetByCode(ctx, inv.CompCode)
	if err != nil {
		return invoice.InvoiceDetailResponse{}, fmt.Errorf("failed to get company %s of invoice %d: %w", inv.CompCode, id, err)
	}

	return invoice.NewInvoiceDetailResponse(inv, owner), nil
}

// Create implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	created, err := s.invoiceRepo.Create(ctx, req.CompCode, *req.Amt)
	if err != nil {
		if sqlerr.Is(err, sqlerr.ForeignKeyViolation) {
			slog.Warn("Invoice references unknown company", "comp_code", req.CompCode, "constraint", sqlerr.Constraint(err))
			return invoice.InvoiceResponse{}, fmt.Errorf("%w: %s", invoice.ErrUnknownCompany, req.CompCode)
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	slog.Info("Created invoice", "id", created.ID, "comp_code", created.CompCode)
	return invoice.NewInvoiceResponse(created), nil
}

// Update implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Update(ctx context.Context, id int, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	current, err := s.getInvoice(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	paidDate := current.PaidDateAfter(*req.Paid, s.now())

	updated, err := s.invoiceRepo.Update(ctx, id, *req.Amt, *req.Paid, paidDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.InvoiceResponse{}, fmt.Errorf("%w: %d", invoice.ErrInvoiceNotFound, id)
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to update invoice with id %d: %w", id, err)
	}
	return invoice.NewInvoiceResponse(updated), nil
}

// Delete implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %d", invoice.ErrInvoiceNotFound, id)
		}
		return fmt.Errorf("failed to delete invoice with id %d: %w", id, err)
	}
	slog.Info("Deleted invoice", "id", id)
	return nil
}

func (s *InvoiceServiceImpl) getInvoice(ctx context.Context, id int) (invoice.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, fmt.Errorf("%w: %d", invoice.ErrInvoiceNotFound, id)
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice by id: %w", err)
	}
	return inv, nil
}

func NewInvoiceService(invoiceRepo invoice.InvoiceRepository, companyRepo company.CompanyRepository) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}
