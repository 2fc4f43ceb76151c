package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The SPA consumes plain {"msg": ...} bodies on every non-2xx response,
// so the error envelope stays that simple on purpose.

func msgResponse(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}

func notFoundResponse(c *gin.Context) {
	msgResponse(c, http.StatusNotFound, "Team not found")
}

func notAuthorizedResponse(c *gin.Context) {
	msgResponse(c, http.StatusUnauthorized, "Not authorized")
}

func serverErrorResponse(c *gin.Context) {
	msgResponse(c, http.StatusInternalServerError, "Server error")
}
