package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrUnknownCompany  = errors.New("invoice references a company that does not exist")
)
