package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ja7ad/dcmodel/pkg/params"
)

// requestError carries the HTTP status a handler failure maps to.
type requestError struct {
	err    error
	status int
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func newRequestError(err error, status int) error {
	return &requestError{err: err, status: status}
}

type errorBody struct {
	Error      string              `json:"error"`
	Violations []params.FieldError `json:"violations,omitempty"`
	RequestID  string              `json:"requestId,omitempty"`
}

// handle adapts an error-returning handler. Validation failures become 422
// with the full violation list.
func handle(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		_ = c.Error(err)

		body := errorBody{Error: err.Error(), RequestID: c.GetString(_ctxRequestID)}
		status := http.StatusInternalServerError

		var (
			ve *params.ValidationError
			re *requestError
		)
		switch {
		case errors.As(err, &ve):
			status = http.StatusUnprocessableEntity
			body.Violations = ve.Violations
		case errors.As(err, &re):
			status = re.status
		}
		c.AbortWithStatusJSON(status, body)
	}
}
