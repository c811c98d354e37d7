package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MikeMC777/ordenes-api/internal/guard"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
	// Rejected fields and the rule they failed
	Fields map[string]string `json:"fields,omitempty"`
}

// BindJSON decodes and validates the body into dst. On failure it writes a
// 400 and returns false.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{Error: "validation failed", Fields: fields})
			return false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{Error: "invalid json body"})
		return false
	}
	return true
}

// PathID parses the :id path parameter. Zero is accepted here and left to
// the service checks.
func PathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{Error: "invalid id in the request path"})
		return 0, false
	}
	return id, true
}

// Fail maps argument and range errors to 400; anything else is logged and
// reported as 500.
func Fail(c *gin.Context, err error) {
	if errors.Is(err, guard.ErrInvalidArgument) || errors.Is(err, guard.ErrOutOfRange) {
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{Error: err.Error()})
		return
	}
	_ = c.Error(err)
	Log(c).WithError(err).Error("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPError{Error: "internal error"})
}

func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, HTTPError{Error: "not found"})
}
