package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByCode(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list companies", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"companies": companies})
}

// GetByCode implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	companyData, err := c.companyService.GetByCode(r.Context(), code)
	if err != nil {
		slog.Error("Failed to get company", "code", code, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"company": companyData})
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create company", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Envelope{"company": created})
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var updateReq company.UpdateCompanyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := c.companyService.Update(r.Context(), code, updateReq)
	if err != nil {
		slog.Error("Company update service error", "code", code, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"company": updated})
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := c.companyService.Delete(r.Context(), code); err != nil {
		slog.Error("Failed to delete company", "code", code, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Deleted(w)
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}
