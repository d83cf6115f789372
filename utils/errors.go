package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds, used by callers that need to branch on the failure class
// rather than the HTTP status.
const (
	KindValidation        = "validation_error"
	KindNotFound          = "not_found"
	KindInvalidPayload    = "invalid_payload"
	KindInvalidSplitState = "invalid_split_state"
	KindDanglingReference = "dangling_participant_reference"
	KindUpstream          = "upstream_error"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports a missing or invalid request field
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// NewNotFoundError reports an absent entity
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidPayloadError reports a QR payload that failed to decode
func NewInvalidPayloadError(details string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidPayload,
		Message: "Invalid QR payload",
		Details: details,
	}
}

// NewInvalidSplitStateError reports a bill state no split can be computed for
func NewInvalidSplitStateError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidSplitState,
		Message: message,
	}
}

// NewDanglingReferenceError reports an item assignment pointing at an
// unknown participant.
func NewDanglingReferenceError(itemID, participantID string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindDanglingReference,
		Message: "Bill aggregate is inconsistent",
		Details: fmt.Sprintf("item %s assigned to unknown participant %s", itemID, participantID),
	}
}

// NewUpstreamError wraps a backing store or auth provider failure, keeping
// the original message for diagnostics.
func NewUpstreamError(message string, err error) *AppError {
	appErr := &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindUpstream,
		Message: message,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// NewInternalError reports an unclassified server-side failure
func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindUpstream,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Kind == kind
}

// HandleError sends an appropriate HTTP response for an error. Error bodies
// are {"error": string, "details": string?}.
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Details != "" {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.Code, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a 200 response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleCreated sends a 201 response
func HandleCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
