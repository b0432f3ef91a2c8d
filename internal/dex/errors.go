package dex

import "errors"

// Lookup errors. Their messages are printed verbatim to the user.
//
//nolint:staticcheck // capitalized, punctuated messages are user-facing output
var (
	// ErrPokemonNotFound is returned when no Pokemon has the requested name.
	ErrPokemonNotFound = errors.New("Couldn't find the Pokemon!")

	// ErrTypeNotFound is returned when no type has the requested name.
	ErrTypeNotFound = errors.New("Couldn't find the type!")

	// ErrNatureNotFound is returned when no nature has the requested name.
	ErrNatureNotFound = errors.New("Couldn't find the Nature!")

	// ErrMissingPrimaryType is returned when a matchup is requested without
	// a valid primary defending type.
	ErrMissingPrimaryType = errors.New("You forgot a primary type!")

	// ErrDependency is the message of every DependencyError.
	ErrDependency = errors.New("Something went wrong!")
)

// DependencyError reports that the data provider failed for a reason other
// than a missing record (network failure, bad status, malformed payload).
// Its message is always ErrDependency's; the cause is kept for logging.
type DependencyError struct {
	Cause error
}

// Error implements error.
func (e *DependencyError) Error() string {
	return ErrDependency.Error()
}

// Unwrap returns the provider error.
func (e *DependencyError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrDependency) true for any DependencyError.
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependency
}
