// Package apierrors defines the typed error surface of the SDK. Every
// failure returned by a service is an *Error; Display and FieldErrors are
// the only two ways callers are expected to turn one into UI text.
package apierrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an API failure. It mirrors the HTTP status families the
// XetaSuite backend actually emits, plus transport failures that never
// produced a response.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindRateLimited
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the normalized form of anything that went wrong between the SDK
// and the backend. Message is the server-provided message when one existed;
// Fields is populated only for 422 validation responses.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string

	// cause is the underlying transport error, if any.
	cause error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Kind)
	}
	if e.cause != nil {
		return fmt.Sprintf("api: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error for a decoded HTTP failure response.
func New(status int, message string, fields map[string][]string) *Error {
	return &Error{
		Kind:    kindForStatus(status, fields),
		Status:  status,
		Message: message,
		Fields:  fields,
	}
}

// Network wraps a transport-level failure (DNS, refused connection, timeout)
// that never yielded an HTTP response.
func Network(cause error) *Error {
	return &Error{Kind: KindNetwork, cause: cause}
}

func kindForStatus(status int, fields map[string][]string) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 422 || len(fields) > 0:
		return KindValidation
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// Normalize guarantees an apierrors-typed error. Errors already carrying
// an *Error pass through unchanged; anything else is treated as an
// unclassified failure. Services apply this on every error path so raw
// transport errors never escape.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return &Error{Kind: KindUnknown, cause: err}
}

// As extracts the *Error from an error chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

// Fallback strings keyed by status code. Anything outside the table falls
// through to the generic message.
var statusMessages = map[int]string{
	401: "Invalid credentials",
	403: "Access forbidden",
	404: "Resource not found",
	422: "Validation error",
	429: "Too many attempts, please try again later",
	500: "Server error, please try again later",
}

const genericMessage = "An unexpected error occurred"

// Display converts any error into a display-ready string. It never panics
// and never returns an empty string. Resolution order: the server message,
// then flattened validation messages, then the per-status fallback table,
// then a generic message.
func Display(err error) string {
	if err == nil {
		return ""
	}
	apiErr, ok := As(err)
	if !ok {
		return genericMessage
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if len(apiErr.Fields) > 0 {
		return flattenFields(apiErr.Fields)
	}
	if msg, ok := statusMessages[apiErr.Status]; ok {
		return msg
	}
	if apiErr.Status >= 500 {
		return statusMessages[500]
	}
	return genericMessage
}

// FieldErrors returns the first message per field of a 422 validation
// error, or nil when err is anything else. Form views use it to annotate
// individual inputs.
func FieldErrors(err error) map[string]string {
	apiErr, ok := As(err)
	if !ok || apiErr.Kind != KindValidation || len(apiErr.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(apiErr.Fields))
	for field, msgs := range apiErr.Fields {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

func flattenFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var all []string
	for _, k := range keys {
		all = append(all, fields[k]...)
	}
	return strings.Join(all, ", ")
}
