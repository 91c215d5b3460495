package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindRequest binds a JSON or form body into req. A failed "required" rule
// is answered with missingMsg, any other decoding error with a generic 400.
func bindRequest(c *gin.Context, req any, missingMsg string) bool {
	err := c.ShouldBind(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.String(http.StatusBadRequest, missingMsg)
		return false
	}
	c.String(http.StatusBadRequest, "Invalid request body")
	return false
}
