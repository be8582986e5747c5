package apierrors_test

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
)

func TestDisplay(t *testing.T) {
	t.Parallel()

	t.Run("Server_Message_Wins", func(t *testing.T) {
		err := apierrors.New(404, "Zone no longer exists", nil)
		assert.Equal(t, "Zone no longer exists", apierrors.Display(err))
	})

	t.Run("Validation_Messages_Flattened", func(t *testing.T) {
		err := apierrors.New(422, "", map[string][]string{
			"name":  {"The name field is required."},
			"email": {"The email must be valid.", "The email is taken."},
		})
		assert.Equal(t,
			"The email must be valid., The email is taken., The name field is required.",
			apierrors.Display(err))
	})

	t.Run("Status_Fallbacks", func(t *testing.T) {
		cases := map[int]string{
			401: "Invalid credentials",
			403: "Access forbidden",
			404: "Resource not found",
			422: "Validation error",
			429: "Too many attempts, please try again later",
			500: "Server error, please try again later",
			503: "Server error, please try again later",
		}
		for status, want := range cases {
			assert.Equal(t, want, apierrors.Display(apierrors.New(status, "", nil)), "status %d", status)
		}
	})

	t.Run("Unclassified_Is_Generic", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", apierrors.Display(apierrors.New(418, "", nil)))
		assert.Equal(t, "An unexpected error occurred", apierrors.Display(io.EOF))
	})

	t.Run("Nil_Is_Empty", func(t *testing.T) {
		assert.Empty(t, apierrors.Display(nil))
	})

	t.Run("Wrapped_Errors_Unwrap", func(t *testing.T) {
		err := errors.Wrap(apierrors.New(404, "", nil), "fetching site")
		assert.Equal(t, "Resource not found", apierrors.Display(err))
	})
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("First_Message_Per_Field", func(t *testing.T) {
		err := apierrors.New(422, "", map[string][]string{
			"name":  {"required", "too short"},
			"email": {"invalid"},
		})
		assert.Equal(t, map[string]string{"name": "required", "email": "invalid"}, apierrors.FieldErrors(err))
	})

	t.Run("Non_Validation_Is_Nil", func(t *testing.T) {
		assert.Nil(t, apierrors.FieldErrors(apierrors.New(404, "", nil)))
		assert.Nil(t, apierrors.FieldErrors(io.EOF))
		assert.Nil(t, apierrors.FieldErrors(nil))
	})
}

func TestKindClassification(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apierrors.KindUnauthorized, apierrors.New(401, "", nil).Kind)
	assert.Equal(t, apierrors.KindForbidden, apierrors.New(403, "", nil).Kind)
	assert.Equal(t, apierrors.KindNotFound, apierrors.New(404, "", nil).Kind)
	assert.Equal(t, apierrors.KindValidation, apierrors.New(422, "", nil).Kind)
	assert.Equal(t, apierrors.KindRateLimited, apierrors.New(429, "", nil).Kind)
	assert.Equal(t, apierrors.KindServer, apierrors.New(502, "", nil).Kind)
	assert.Equal(t, apierrors.KindUnknown, apierrors.New(418, "", nil).Kind)

	netErr := apierrors.Network(io.ErrUnexpectedEOF)
	assert.Equal(t, apierrors.KindNetwork, netErr.Kind)
	require.ErrorIs(t, netErr, io.ErrUnexpectedEOF)
	assert.True(t, apierrors.IsKind(netErr, apierrors.KindNetwork))
}
