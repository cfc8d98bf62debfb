package handler

import (
	"net/http"

	"linkshortener/internal/domain"
	"linkshortener/internal/service"
)

const (
	codeValidation  = "VALIDATION_ERROR"
	codeNotFound    = "NOT_FOUND"
	codeConflict    = "CONFLICT"
	codeGone        = "GONE"
	codeInternal    = "INTERNAL_ERROR"
	codeUnavailable = "SERVICE_UNAVAILABLE"
)

var (
	respInvalidBody = domain.Fail(codeValidation, "invalid request body")
	respNotFound    = domain.Fail(codeNotFound, "not found")
	respConflict    = domain.Fail(codeConflict, "already exists")
	respGone        = domain.Fail(codeGone, "link expired")
	respInternal    = domain.Fail(codeInternal, "internal error")
	respUnavailable = domain.Fail(codeUnavailable, "database unavailable")
	respHealthOK    = domain.OK("OK")
)

// errorResponse maps a service error to its status and body. Causes of
// database and internal errors never reach the body.
func errorResponse(err error) (int, domain.Envelope) {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest, domain.Fail(codeValidation, service.ReasonOf(err))
	case service.KindNotFound:
		return http.StatusNotFound, respNotFound
	case service.KindConflict:
		return http.StatusConflict, respConflict
	case service.KindGone:
		return http.StatusGone, respGone
	default:
		return http.StatusInternalServerError, respInternal
	}
}
