package nbody

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidG indicates G <= 0.
	ErrInvalidG = errors.New("nbody: G must be > 0")

	// ErrInvalidTheta indicates Theta <= 0.
	ErrInvalidTheta = errors.New("nbody: Theta must be > 0")

	// ErrInvalidEpsilon indicates Eps < 0.
	ErrInvalidEpsilon = errors.New("nbody: Eps must be >= 0")

	// ErrNonFinite indicates a NaN or Inf value in a particle's position
	// or mass.
	ErrNonFinite = errors.New("nbody: non-finite position or mass")

	// ErrOutsideRoot indicates a particle falls outside a caller-supplied
	// root cube under WithStrictGeometry.
	ErrOutsideRoot = errors.New("nbody: particle outside root cube")
)

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("nbody.%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
