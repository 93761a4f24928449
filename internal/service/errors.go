package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Stable error codes returned to clients
const (
	CodeNoSchoolID      = "NO_SCHOOL_ID"
	CodeMissingAnswers  = "MISSING_ANSWERS"
	CodeNoCampus        = "NO_CAMPUS"
	CodeNoGenre         = "NO_GENRE"
	CodeNoMatchedResult = "NO_MATCHED_RESULT"
	CodeInternal        = "INTERNAL_ERROR"
)

// Error is a request-scoped diagnosis failure with a stable code and an HTTP
// status class. None of these are retryable without different input.
type Error struct {
	Code    string
	Message string
	Status  int
	cause   error
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func errNoSchoolID() *Error {
	return &Error{Code: CodeNoSchoolID, Message: "school not specified", Status: http.StatusBadRequest}
}

func errMissingAnswers(missing []string) *Error {
	return &Error{
		Code:    CodeMissingAnswers,
		Message: "missing answers for: " + strings.Join(missing, ", "),
		Status:  http.StatusBadRequest,
	}
}

// Campus/genre/result errors are configuration gaps attributable to tenant
// data, not caller input; still a 400 class per the error policy.
func errNoCampus(slug string) *Error {
	return &Error{
		Code:    CodeNoCampus,
		Message: fmt.Sprintf("no active campus found for slug %q", slug),
		Status:  http.StatusBadRequest,
	}
}

func errNoGenre(slug string) *Error {
	return &Error{
		Code:    CodeNoGenre,
		Message: fmt.Sprintf("no active genre found for slug %q", slug),
		Status:  http.StatusBadRequest,
	}
}

func errNoMatchedResult() *Error {
	return &Error{
		Code:    CodeNoMatchedResult,
		Message: "no result rows configured for this school",
		Status:  http.StatusBadRequest,
	}
}

func errInternal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: err.Error(),
		Status:  http.StatusInternalServerError,
		cause:   err,
	}
}

// AsError normalizes any failure into an *Error; unexpected failures become
// INTERNAL_ERROR with the underlying message preserved for diagnosis.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return errInternal(err)
}
