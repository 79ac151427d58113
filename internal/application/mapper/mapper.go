// Package mapper translates timelines to and from console specific per-frame input tables.
package mapper

import "github.com/younwookim/framepad/internal/domain/input"

// Mapper converts a timeline into a console's native input data and back
type Mapper[T any] interface {
	Name() string
	MapFromFormat(tl *input.Timeline) T
	MapToFormat(data T) *input.Timeline
}
