package invoice

import (
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type InvoiceListItem struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

type InvoiceResponse struct {
	ID       int             `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse nests the owning company in place of comp_code.
type InvoiceDetailResponse struct {
	ID       int                     `json:"id"`
	Amt      decimal.Decimal         `json:"amt"`
	Paid     bool                    `json:"paid"`
	AddDate  string                  `json:"add_date"`
	PaidDate *string                 `json:"paid_date"`
	Company  company.CompanyResponse `json:"company"`
}

func NewInvoiceResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(DateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func NewInvoiceDetailResponse(inv Invoice, owner company.Company) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(DateLayout),
		PaidDate: formatDate(inv.PaidDate),
		Company:  company.NewCompanyResponse(owner),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required"`
	Amt      *decimal.Decimal `json:"amt" validate:"required"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateAmt(*r.Amt)
}

type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" validate:"required"`
	Paid *bool            `json:"paid" validate:"required"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateAmt(*r.Amt)
}

// amt is stored as NUMERIC(12, 2).
const amtScale = 2

var maxAmt = decimal.RequireFromString("9999999999.99")

func validateAmt(amt decimal.Decimal) error {
	var msg string
	switch {
	case amt.IsNegative():
		msg = "amt must be at least 0"
	case !amt.Equal(amt.Truncate(amtScale)):
		msg = "amt must not have more than 2 decimal places"
	case amt.GreaterThan(maxAmt):
		msg = "amt must not exceed " + maxAmt.String()
	default:
		return nil
	}
	return validator.ValidationErrors{{Field: "amt", Message: msg}}
}
