package texpool

// Handle is an opaque identifier for a GPU texture resource.
// Handles are uint64 to accommodate various backend handle sizes.
// A handle is unique while its record exists and is never reused for a
// different size/format combination without being destroyed and recreated.
type Handle uint64

// InvalidHandle is the zero value, representing an invalid/null texture.
// Acquire returns InvalidHandle when the driver refuses the allocation;
// callers must treat it as "no texture available this frame".
const InvalidHandle Handle = 0

// TextureDesc describes a 2D texture to create on the device.
type TextureDesc struct {
	// Width is the texture width in pixels. Must be positive.
	Width int

	// Height is the texture height in pixels. Must be positive.
	Height int

	// Internal is the on-GPU storage format.
	Internal InternalFormat

	// Pixel is the channel order of uploaded data.
	Pixel PixelFormat

	// Component is the numeric type of one channel component.
	Component ComponentType

	// Label is an optional debug label passed through to the driver.
	Label string
}

// FilterMode selects how a sampler interpolates between texels.
type FilterMode uint8

const (
	// FilterLinear interpolates linearly between texels.
	FilterLinear FilterMode = iota

	// FilterNearest snaps to the nearest texel.
	FilterNearest
)

// WrapMode selects how a sampler treats coordinates outside [0, 1].
type WrapMode uint8

const (
	// WrapClampToEdge clamps coordinates to the texture edge.
	WrapClampToEdge WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat
)

// Sampling holds the sampler parameters applied to a freshly created
// texture. The pool applies DefaultSampling once per creation.
type Sampling struct {
	MinFilter FilterMode
	MagFilter FilterMode
	WrapU     WrapMode
	WrapV     WrapMode
}

// DefaultSampling returns the sampling parameters the pool applies to
// every texture it creates: linear filtering, clamp-to-edge wrapping.
func DefaultSampling() Sampling {
	return Sampling{
		MinFilter: FilterLinear,
		MagFilter: FilterLinear,
		WrapU:     WrapClampToEdge,
		WrapV:     WrapClampToEdge,
	}
}

// Device is the graphics-layer boundary consumed by the pool. The pool
// treats every operation as opaque: it performs no format validation
// beyond passing descriptors through, and it assumes create/destroy are
// synchronous but fast relative to the render frame budget.
//
// Implementations must be safe for concurrent use; the pool may call
// DestroyTextures from its background worker while the render thread
// calls CreateTexture2D.
//
// See backend/native for the gogpu/wgpu HAL implementation.
type Device interface {
	// CreateTexture2D allocates GPU storage with exactly the requested
	// dimensions and format triple. A driver failure returns
	// (InvalidHandle, err).
	CreateTexture2D(desc TextureDesc) (Handle, error)

	// Bind makes the texture current for subsequent parameter calls.
	Bind(h Handle)

	// SetSampling applies sampler parameters to a bound texture.
	SetSampling(h Handle, s Sampling) error

	// DestroyTextures releases one or many textures in a single batched
	// call. Unknown handles are ignored.
	DestroyTextures(handles []Handle)

	// Err returns the most recent device error, or nil. Used by the pool
	// to enrich creation-failure log lines.
	Err() error
}
