package company

import (
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/validator"
)

type CompanyListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse is a company together with the ids of its invoices, ascending.
type CompanyDetailResponse struct {
	CompanyResponse
	Invoices []int `json:"invoices"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

func (r *CreateCompanyRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if CodeFromName(r.Name) == "" {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name must contain at least one non-space character",
		}}
	}
	return nil
}

// UpdateCompanyRequest replaces both fields; the code never changes.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"required"`
}

func (r *UpdateCompanyRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if validator.IsEmpty(*r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name must not be blank",
		}}
	}
	return nil
}
