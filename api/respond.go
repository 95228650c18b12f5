package api

import (
	// Go Internal Packages
	"net/http"

	// Local Packages
	errors "bospay-gateway/errors"

	// External Packages
	"github.com/gin-gonic/gin"
)

// writeError maps error kinds to HTTP statuses: locally rejected input
// is 400, upstream auth failures 401, misses 404, any other upstream
// failure 502, everything else 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(errors.Invalid, err):
		status = http.StatusBadRequest
	case errors.Is(errors.Unauthorized, err):
		status = http.StatusUnauthorized
	case errors.Is(errors.NotFound, err):
		status = http.StatusNotFound
	case errors.Is(errors.Remote, err):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
