package outcome

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

type emptyErr struct{}

func (emptyErr) Error() string { return "" }

func TestFromError(t *testing.T) {
	t.Run("unauthenticated aborts", func(t *testing.T) {
		_, err := FromError(fmt.Errorf("create: %w", authz.ErrUnauthenticated))
		assert.ErrorIs(t, err, authz.ErrUnauthenticated)
	})

	t.Run("profile required redirects", func(t *testing.T) {
		out, err := FromError(authz.ErrProfileRequired)
		assert.NoError(t, err)
		assert.Equal(t, RedirectTo("/profile/create"), out)
		assert.True(t, out.IsRedirect())
	})

	cases := map[string]struct {
		err  error
		want string
	}{
		"validation":  {&schema.ValidationError{Messages: []string{"a.", "b."}}, "a. b."},
		"persistence": {httperr.Persistence(gorm.ErrRecordNotFound), "record not found"},
		"other":       {errors.New("upload failed"), "upload failed"},
		"user facing": {MessageError("Property not found"), "Property not found"},
		"blank":       {emptyErr{}, "An error occurred"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := FromError(tc.err)
			assert.NoError(t, err)
			assert.Equal(t, Result(tc.want), out)
			assert.False(t, out.IsRedirect())
		})
	}
}
