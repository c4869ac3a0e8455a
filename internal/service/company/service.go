package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/sqlerr"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyListItem, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]company.CompanyListItem, 0, len(companies))
	for _, comp := range companies {
		items = append(items, company.CompanyListItem{Code: comp.Code, Name: comp.Name})
	}
	return items, nil
}

// GetByCode implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).GetByCode of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) GetByCode(ctx context.Context, code string) (company.CompanyDetailResponse, error) {
	companyData, err := c.CompanyRepository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyDetailResponse{}, fmt.Errorf("%w: %s", company.ErrCompanyNotFound, code)
		}
		return company.CompanyDetailResponse{}, fmt.Errorf("failed to get company by code: %w", err)
	}

	invoiceIDs, err := c.CompanyRepository.ListInvoiceIDs(ctx, code)
	if err != nil {
		return company.CompanyDetailResponse{}, err
	}

	return company.CompanyDetailResponse{
		CompanyResponse: company.NewCompanyResponse(companyData),
		Invoices:        invoiceIDs,
	}, nil
}

// Create implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Create of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	code := company.CodeFromName(req.Name)

	created, err := c.CompanyRepository.Create(ctx, company.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if sqlerr.Is(err, sqlerr.UniqueViolation) {
			slog.Warn("Company code already exists", "code", code, "constraint", sqlerr.Constraint(err))
			return company.CompanyResponse{}, fmt.Errorf("%w: %s", company.ErrCompanyCodeExists, code)
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	slog.Info("Created company", "code", created.Code)
	return company.NewCompanyResponse(created), nil
}

// Update implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Update of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Update(ctx context.Context, code string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	updated, err := c.CompanyRepository.Update(ctx, code, *req.Name, *req.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, fmt.Errorf("%w: %s", company.ErrCompanyNotFound, code)
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to update company with code %s: %w", code, err)
	}
	return company.NewCompanyResponse(updated), nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, code string) error {
	if err := c.CompanyRepository.Delete(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", company.ErrCompanyNotFound, code)
		}
		return fmt.Errorf("failed to delete company with code %s: %w", code, err)
	}
	slog.Info("Deleted company", "code", code)
	return nil
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepository,
	}
}
