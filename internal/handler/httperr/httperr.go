package httperr

import (
	"net/http"

	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithTaxonomy maps the service error taxonomy onto HTTP statuses:
// invalid input 400, not found 404, already exists 409, anything else 500.
// Classification goes through errs.Is; the sentinels are attached as
// equivalence marks and stdlib errors.Is cannot see them.
func AbortWithTaxonomy(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrAlreadyExists):
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
