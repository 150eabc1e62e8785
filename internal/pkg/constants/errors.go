package constants

import "net/http"

// CodedError is a sentinel error carrying the HTTP status it should be
// rendered with. The central echo error handler unwraps down to it.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidPeriod     = NewCodedError("invalid period: month must be in 1..12", http.StatusBadRequest)
	ErrBadRequest        = NewCodedError("bad request", http.StatusBadRequest)
	ErrNotHotel          = NewCodedError("hotel stats are only available for hotel-type properties", http.StatusBadRequest)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrForbiddenZone     = NewCodedError("role has no access to this zone", http.StatusForbidden)
)
