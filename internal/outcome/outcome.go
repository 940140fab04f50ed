// Package outcome is the result every mutation hands to the presentation
// layer: either a message to show or a page to move to.
package outcome

import (
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/rental-marketplace/internal/authz"
)

const ProfileCreatePath = "/profile/create"

type Outcome struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func Result(message string) Outcome {
	return Outcome{Message: message}
}

func RedirectTo(target string) Outcome {
	return Outcome{Redirect: target}
}

func (o Outcome) IsRedirect() bool {
	return o.Redirect != ""
}

// FromError settles a failed action. Only ErrUnauthenticated is returned as
// an error; everything else becomes an Outcome.
func FromError(err error) (Outcome, error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		return Outcome{}, err
	case errors.Is(err, authz.ErrProfileRequired):
		return RedirectTo(ProfileCreatePath), nil
	}

	msg := err.Error()
	if msg == "" {
		msg = "An error occurred"
	}
	slog.Debug("action failed", "error", err)
	return Result(msg), nil
}

// MessageError is a failure whose text is shown to the user as is.
type MessageError string

func (e MessageError) Error() string {
	return string(e)
}
