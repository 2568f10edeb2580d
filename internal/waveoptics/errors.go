package waveoptics

import "errors"

// Error taxonomy of the propagation core. Each of these terminates only the
// offending unit of work; Propagate never fails as a whole.
var (
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidPositionKey = errors.New("invalid position key")
	ErrNumericInstability = errors.New("numeric instability")
	ErrIterationLimit     = errors.New("iteration limit exceeded")
)
