package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients, grouped by concern.
const (
	// Authentication / authorization errors
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_004"
	ErrExpiredToken          = "AUTH_005"
	ErrInsufficientPrivilege = "AUTH_006"

	// Validation errors
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Configuration errors (workspace setup incomplete)
	ErrProfileNotConfigured    = "CFG_001"
	ErrGuardrailsNotConfigured = "CFG_002"

	// Decision engine errors
	ErrNoEntityData        = "DEC_001"
	ErrSchemaViolation     = "DEC_002"
	ErrInvalidTransition   = "DEC_003"
	ErrRecommendationNotFound = "DEC_004"

	// Execution errors
	ErrNoApprovedActions    = "EXE_001"
	ErrExecutionInProgress  = "EXE_002"
	ErrDuplicateEntity      = "EXE_003"

	// Server errors
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,

	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,

	ErrProfileNotConfigured:    http.StatusPreconditionFailed,
	ErrGuardrailsNotConfigured: http.StatusPreconditionFailed,

	ErrNoEntityData:           http.StatusUnprocessableEntity,
	ErrSchemaViolation:        http.StatusBadGateway,
	ErrInvalidTransition:      http.StatusConflict,
	ErrRecommendationNotFound: http.StatusNotFound,

	ErrNoApprovedActions:   http.StatusUnprocessableEntity,
	ErrExecutionInProgress: http.StatusConflict,
	ErrDuplicateEntity:     http.StatusUnprocessableEntity,

	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
}

// APIError is the standardized error payload returned by every handler.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes a standardized error response with the mapped HTTP status.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps an existing error into an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
