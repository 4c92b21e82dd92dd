package termchart

import "errors"

// Rendering failures form a closed set of sentinel errors. They are
// deterministic functions of the input, detected before any canvas is
// allocated, and should be matched with [errors.Is].
var (
	// ErrEmptyData is returned when the series (or every series in an
	// overlay) contains zero samples.
	ErrEmptyData = errors.New("termchart: cannot render empty data")

	// ErrAllNonFinite is returned when every sample is NaN or infinite and
	// no explicit range was supplied, leaving no way to derive a value scale.
	ErrAllNonFinite = errors.New("termchart: no finite samples and no explicit range")

	// ErrInvalidRange is returned when the resolved minimum is not strictly
	// below the resolved maximum.
	ErrInvalidRange = errors.New("termchart: invalid range: min must be strictly below max")

	// ErrZeroDimension is returned when the configured height or width
	// resolves to less than one row or column.
	ErrZeroDimension = errors.New("termchart: height and width must be at least 1")
)
