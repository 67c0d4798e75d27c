package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

// StatusClientClosedRequest reports a request abandoned by its client; no
// stdlib constant exists for it.
const StatusClientClosedRequest = 499

// StatusOf maps the fault kind of err to an HTTP status code. Errors
// outside the taxonomy classify as unexpected.
func StatusOf(err error) int {
	switch fault.KindOf(err) {
	case fault.KindValidation, fault.KindBadRequest:
		return http.StatusBadRequest
	case fault.KindConflict:
		return http.StatusConflict
	case fault.KindNotFound:
		return http.StatusNotFound
	case fault.KindUnauthorized:
		return http.StatusUnauthorized
	case fault.KindForbidden:
		return http.StatusForbidden
	case fault.KindDomain:
		return http.StatusUnprocessableEntity
	case fault.KindRateLimit:
		return http.StatusTooManyRequests
	case fault.KindUnavailable:
		return http.StatusServiceUnavailable
	case fault.KindCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes a success as JSON at okStatus, or the fault payload at
// the status mapped from its kind.
func Respond[T any](c *gin.Context, okStatus int, r rail.Result[T]) {
	if r.IsSuccess() {
		c.JSON(okStatus, r.Value())
		return
	}
	err := r.Err()
	c.JSON(StatusOf(err), fault.PayloadOf(err))
}

// Bind reads the JSON request body into T on the railway; a body that does
// not bind becomes a bad-request failure.
func Bind[T any](c *gin.Context) rail.Result[T] {
	var body T
	if err := c.ShouldBindJSON(&body); err != nil {
		return rail.Failure[T](fault.Newf(fault.KindBadRequest, "invalid request body: %v", err))
	}
	return rail.Success(body)
}
