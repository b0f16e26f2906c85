package tilegrid

import (
	"errors"
	"fmt"
)

// ErrIndexRange is returned when a tile index does not fit the one-digit
// cells of the map format.
var ErrIndexRange = errors.New("tile index out of range 0..9")

// ParseError reports malformed sidecar text.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tilegrid: line %d: %s", e.Line, e.Msg)
}
