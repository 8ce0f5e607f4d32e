package texpool

import "time"

// record is the per-handle metadata owned exclusively by the pool.
// No other component holds a reference to a record, only to the handle.
type record struct {
	handle Handle

	// Dimensions and format triple, fixed for the record's lifetime.
	// Together they form the compatibility tuple.
	width     int
	height    int
	internal  InternalFormat
	pixel     PixelFormat
	component ComponentType

	// inUse is true from Acquire until the matching Release.
	inUse bool

	createdAt time.Time
	lastUsed  time.Time

	// sizeBytes is computed once at creation:
	// width * height * BytesPerPixel(internal, component).
	sizeBytes uint64
}

// matches reports whether the record is interchangeable with a request.
// All five tuple fields must be identical; no nearest-size substitution.
func (r *record) matches(width, height int, internal InternalFormat, pixel PixelFormat, component ComponentType) bool {
	return r.width == width &&
		r.height == height &&
		r.internal == internal &&
		r.pixel == pixel &&
		r.component == component
}
