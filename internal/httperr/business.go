package httperr

import "errors"

// BusinessError is a rule violation identified by a stable code. Two values
// with the same code compare equal, so package-level sentinels work with
// errors.Is.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return BusinessCode(err) == code && code != ""
}

// BusinessCode returns "" when err carries no BusinessError.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
