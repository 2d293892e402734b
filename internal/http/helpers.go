package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MutationAuditor records a receipt for a mutating request. A nil auditor
// disables auditing.
type MutationAuditor interface {
	SaveMutation(action string, payload any) (string, error)
}

func logAuditError(action string, err error) {
	log.Printf("Failed to record audit receipt for %s: %v", action, err)
}

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIndexParam extracts a 0-based collection index from URL parameters
// and range-checks it. Responds with 400/404 and returns false on failure.
func parseIndexParam(c *gin.Context, paramName string, size int) (int, bool) {
	idxStr := c.Param(paramName)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	if idx >= size {
		respondNotFound(c, "book")
		return 0, false
	}
	return idx, true
}
