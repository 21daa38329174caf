package polyio

import "github.com/pkg/errors"

// Threading errors through every little parsing helper adds a lot of noise.
// Instead, helpers panic with a ParseError and the public readers recover to
// convert it back into an error. Any other panic is passed through.

type ParseError struct {
	err error
}

func (e ParseError) Error() string {
	return e.err.Error()
}

func (e ParseError) Unwrap() error {
	return e.err
}

// Panic with a ParseError.
func fatalf(format string, args ...interface{}) {
	panic(ParseError{errors.Errorf(format, args...)})
}

func HandleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(ParseError); ok {
			return parseError
		}
		panic(r)
	}
	return nil
}
