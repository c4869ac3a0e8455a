package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]CompanyListItem, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetByCode(ctx context.Context, code string) (CompanyDetailResponse, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, code string) error
}
