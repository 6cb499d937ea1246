package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidForm       = "INVALID_FORM"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInventoryNotFound = "INVENTORY_NOT_FOUND"
	ErrCodeLocationNotFound  = "LOCATION_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeStorage           = "STORAGE_ERROR"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidValues     = NewDomainError(ErrCodeValidation, "Quantity must be an integer and price must be a number")
	ErrMissingName       = NewDomainError(ErrCodeMissingField, "Name is required")
	ErrNameTooLong       = NewDomainError(ErrCodeValidation, "Name must be at most 50 characters")
	ErrInventoryNotFound = NewDomainError(ErrCodeInventoryNotFound, "Inventory position not found")
	ErrLocationNotFound  = NewDomainError(ErrCodeLocationNotFound, "Location not found")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
)
