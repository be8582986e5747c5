// Package formstate drives create/edit modals: it owns the draft values,
// per-field validation errors and the submit round trip.
package formstate

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
)

// GeneralField keys the non-field-specific error entry, mirroring the
// errors.general convention of the form modals.
const GeneralField = "general"

// SubmitFunc persists the draft. Create and update funcs share this shape;
// the form picks one based on its mode.
type SubmitFunc[T any] func(ctx context.Context, values T) error

// ValidateFunc runs client-side before any network call. A non-empty map
// short-circuits submission.
type ValidateFunc[T any] func(values T) map[string]string

// Form holds the state of one create-or-edit modal for entity type T.
type Form[T any] struct {
	mu         sync.Mutex
	values     T
	errors     map[string]string
	submitting bool
	editing    bool

	create   SubmitFunc[T]
	update   SubmitFunc[T]
	validate ValidateFunc[T]
	onError  func(message string)
}

type Option[T any] func(*Form[T])

// WithValidate installs a client-side validation callback.
func WithValidate[T any](fn ValidateFunc[T]) Option[T] {
	return func(f *Form[T]) { f.validate = fn }
}

// WithErrorNotifier receives the display message of any non-validation
// failure (the toast hook).
func WithErrorNotifier[T any](fn func(message string)) Option[T] {
	return func(f *Form[T]) { f.onError = fn }
}

// NewCreate builds a form in create mode with zero-value draft values.
func NewCreate[T any](create SubmitFunc[T], opts ...Option[T]) *Form[T] {
	f := &Form[T]{create: create}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewEdit builds a form in edit mode seeded with the existing entity.
func NewEdit[T any](existing T, update SubmitFunc[T], opts ...Option[T]) *Form[T] {
	f := &Form[T]{values: existing, update: update, editing: true}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Editing reports whether the form updates an existing entity.
func (f *Form[T]) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

// Values returns the current draft.
func (f *Form[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// SetValues replaces the draft and clears any stale field errors.
func (f *Form[T]) SetValues(values T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
	f.errors = nil
}

// Errors returns the current field -> message map; nil when clean.
func (f *Form[T]) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errors == nil {
		return nil
	}
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submitting reports whether a submit round trip is in flight.
func (f *Form[T]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates and persists the draft. It returns true on success.
// Validation failures (client-side or 422) land in the field-error map;
// any other failure sets the general entry and fires the error notifier.
func (f *Form[T]) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	values := f.values
	submit := f.create
	if f.editing {
		submit = f.update
	}
	f.submitting = true
	f.errors = nil
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if f.validate != nil {
		if fieldErrs := f.validate(values); len(fieldErrs) > 0 {
			f.mu.Lock()
			f.errors = fieldErrs
			f.mu.Unlock()
			return false
		}
	}

	err := submit(ctx, values)
	if err == nil {
		return true
	}

	f.mu.Lock()
	if fieldErrs := apierrors.FieldErrors(err); fieldErrs != nil {
		f.errors = fieldErrs
		f.mu.Unlock()
		return false
	}
	message := apierrors.Display(err)
	f.errors = map[string]string{GeneralField: message}
	f.mu.Unlock()
	if f.onError != nil {
		f.onError(message)
	}
	return false
}

// Validator is the shared struct-tag validator for standard ValidateFuncs.
// Field names resolve through the json tag, so client-side errors land on
// the same keys a server 422 response would use.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tag != "" && tag != "-" {
			return tag
		}
		return toSnake(field.Name)
	})
	return v
}

// StructValidate builds a ValidateFunc from `validate` struct tags. Field
// names come from the json tag, matching the backend's field keys.
func StructValidate[T any]() ValidateFunc[T] {
	return func(values T) map[string]string {
		err := Validator.Struct(values)
		if err == nil {
			return nil
		}
		invalid, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string]string{GeneralField: err.Error()}
		}
		out := make(map[string]string, len(invalid))
		for _, fieldErr := range invalid {
			name := fieldErr.Field()
			if _, seen := out[name]; !seen {
				out[name] = "The " + name + " field is invalid."
			}
		}
		return out
	}
}

// toSnake is the fallback for untagged fields. Acronym runs stay together:
// SiteID becomes site_id, HTTPTimeout becomes http_timeout.
func toSnake(name string) string {
	runes := []rune(name)
	var out []rune
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				out = append(out, '_')
			}
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
