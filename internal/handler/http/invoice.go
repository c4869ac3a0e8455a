package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type InvoiceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{
		invoiceService: invoiceService,
	}
}

// invoiceID reads the {id} path parameter. A value that is not a positive integer cannot name
// an invoice, so it is answered with 404 like any other unknown id.
func invoiceID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, ok := validator.ParseID(raw)
	if !ok {
		response.NotFound(w, invoice.ErrInvoiceNotFound.Error()+": "+raw)
	}
	return id, ok
}

func (h *invoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list invoices", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"invoices": invoices})
}

func (h *invoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get invoice", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"invoice": inv})
}

func (h *invoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.invoiceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create invoice", "comp_code", req.CompCode, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Envelope{"invoice": created})
}

func (h *invoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	var req invoice.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.invoiceService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to update invoice", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Envelope{"invoice": updated})
}

func (h *invoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete invoice", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Deleted(w)
}
