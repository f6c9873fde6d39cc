package environment

import "errors"

// Error implements errors returned by environments and their
// components. Op names the operation that failed.
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidParameter reports a constructor or configuration
	// argument outside its legal range
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsatisfiablePlacement reports that the agents of an episode
	// cannot all be placed on distinct free cells
	ErrUnsatisfiablePlacement = errors.New("unsatisfiable placement")

	// ErrInvalidAction reports an action vector of the wrong length or
	// an action index outside the action table
	ErrInvalidAction = errors.New("invalid action")
)

// IsInvalidParameter returns whether or not an error reports an
// illegal parameter
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsUnsatisfiablePlacement returns whether or not an error reports that
// agents could not be placed
func IsUnsatisfiablePlacement(err error) bool {
	return errors.Is(err, ErrUnsatisfiablePlacement)
}

// IsInvalidAction returns whether or not an error reports an illegal
// action vector
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}
