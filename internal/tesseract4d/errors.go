package tesseract4d

import "errors"

var (
	ErrInvalidDimension     = errors.New("invalid dimension")
	ErrUnsupportedDimension = errors.New("only 4-dimensional geometry can be animated")
	ErrUnknownPolytope      = errors.New("unknown polytope")
	ErrUnknownHost          = errors.New("unknown host")
	ErrInvalidConfig        = errors.New("invalid config")
)
