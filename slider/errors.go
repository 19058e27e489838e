package slider

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSlides matches any *InsufficientSlidesError.
	ErrInsufficientSlides = errors.New("slider: at least 2 slides are required")
	// ErrStartIndex is returned when Options.StartAtIndex is not a real slide.
	ErrStartIndex = errors.New("slider: start index out of range")
	// ErrGeometry is returned for non-positive viewport or slide widths.
	ErrGeometry = errors.New("slider: invalid geometry")
)

// InsufficientSlidesError reports a deck too small to clone: the first,
// second, penultimate and last slides must be distinct.
type InsufficientSlidesError struct {
	Count int
}

func (e *InsufficientSlidesError) Error() string {
	return fmt.Sprintf("slider: %d slide(s), at least 2 are required", e.Count)
}

func (e *InsufficientSlidesError) Is(target error) bool {
	return target == ErrInsufficientSlides
}
