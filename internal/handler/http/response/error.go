package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, err.Error())

	// Constraint failures keep the 500 clients already observe, but say what went wrong.
	case errors.Is(err, company.ErrCompanyCodeExists),
		errors.Is(err, invoice.ErrUnknownCompany):
		InternalServerError(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

// MethodNotAllowed and RouteNotFound keep chi's fallbacks in the JSON error shape.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	NotFound(w, "Route not found")
}
