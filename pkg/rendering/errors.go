package rendering

import "errors"

var (
	errEmptyViewport = errors.New("viewport has no area")
	errNoFrame       = errors.New("no frame has been drawn")
)
