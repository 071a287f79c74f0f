package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"unicode"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeMalformedPayload Code = "MALFORMED_PAYLOAD"
	CodeNotFound         Code = "NOT_FOUND"
	CodeOfferExpired     Code = "OFFER_EXPIRED"
	CodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeRateLimit        Code = "RATE_LIMITED"
	CodeDependency       Code = "DEPENDENCY_ERROR"
	CodeInternal         Code = "INTERNAL_ERROR"
)

type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeMalformedPayload: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "Invalid JSON format",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		HTTPStatus:     http.StatusNotFound,
		Retryable:      false,
		PublicMessage:  "resource not found",
		DetailsAllowed: false,
	},
	CodeOfferExpired: {
		HTTPStatus:     http.StatusGone,
		Retryable:      false,
		PublicMessage:  "Offer expired",
		DetailsAllowed: false,
	},
	CodeMethodNotAllowed: {
		HTTPStatus:     http.StatusMethodNotAllowed,
		Retryable:      false,
		PublicMessage:  "method not allowed",
		DetailsAllowed: false,
	},
	CodeUnauthorized: {
		HTTPStatus:     http.StatusUnauthorized,
		Retryable:      false,
		PublicMessage:  "authentication required",
		DetailsAllowed: false,
	},
	CodeRateLimit: {
		HTTPStatus:     http.StatusTooManyRequests,
		Retryable:      true,
		PublicMessage:  "rate limit exceeded",
		DetailsAllowed: false,
	},
	CodeDependency: {
		HTTPStatus:     http.StatusServiceUnavailable,
		Retryable:      true,
		PublicMessage:  "dependency unavailable",
		DetailsAllowed: true,
	},
	CodeInternal: {
		HTTPStatus:     http.StatusInternalServerError,
		Retryable:      true,
		PublicMessage:  "internal server error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	if isBusinessCode(code) {
		return Metadata{
			HTTPStatus:     http.StatusBadRequest,
			Retryable:      false,
			PublicMessage:  "business rule rejected the request",
			DetailsAllowed: true,
		}
	}
	return metadataByCode[CodeInternal]
}

// isBusinessCode reports whether the code is an upstream numeric business
// code (e.g. "90001" from the identity directory) rather than one of ours.
func isBusinessCode(code Code) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// NewBusiness wraps an upstream numeric business code so it renders as a
// client error carrying that code verbatim.
func NewBusiness(code string, message string) *Error {
	return &Error{code: Code(code), message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches structured details rendered to clients when the code
// allows it.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
