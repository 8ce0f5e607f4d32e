package texpool

import "fmt"

// InternalFormat describes the on-GPU storage layout of a texture.
// It determines the channel count used for memory-footprint accounting.
type InternalFormat uint8

const (
	// InternalR8 is single-channel 8-bit storage, used for masks.
	InternalR8 InternalFormat = iota

	// InternalRG8 is two-channel 8-bit storage.
	InternalRG8

	// InternalRGBA8 is the standard four-channel 8-bit storage.
	InternalRGBA8

	// InternalRGBA16F is four-channel half-float storage, used for
	// HDR and linear-light intermediates.
	InternalRGBA16F

	// InternalRGBA32F is four-channel full-float storage.
	InternalRGBA32F
)

// String returns a human-readable name for the internal format.
func (f InternalFormat) String() string {
	switch f {
	case InternalR8:
		return "R8"
	case InternalRG8:
		return "RG8"
	case InternalRGBA8:
		return "RGBA8"
	case InternalRGBA16F:
		return "RGBA16F"
	case InternalRGBA32F:
		return "RGBA32F"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// Channels returns the number of color channels for the format.
func (f InternalFormat) Channels() int {
	switch f {
	case InternalR8:
		return 1
	case InternalRG8:
		return 2
	case InternalRGBA8, InternalRGBA16F, InternalRGBA32F:
		return 4
	default:
		return 4
	}
}

// PixelFormat describes the channel order of uploaded pixel data.
// It participates in compatibility matching but not in size accounting.
type PixelFormat uint8

const (
	// PixelRed is single-channel upload data.
	PixelRed PixelFormat = iota

	// PixelRG is two-channel upload data.
	PixelRG

	// PixelRGBA is four-channel RGBA upload data.
	PixelRGBA

	// PixelBGRA is four-channel BGRA upload data, often used for
	// surface presentation.
	PixelBGRA
)

// String returns a human-readable name for the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case PixelRed:
		return "Red"
	case PixelRG:
		return "RG"
	case PixelRGBA:
		return "RGBA"
	case PixelBGRA:
		return "BGRA"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// ComponentType describes the numeric type of one channel component.
// It determines the bytes-per-component used for memory accounting.
type ComponentType uint8

const (
	// ComponentUint8 is one unsigned byte per component.
	ComponentUint8 ComponentType = iota

	// ComponentUint16 is one unsigned 16-bit integer per component.
	ComponentUint16

	// ComponentHalfFloat is one 16-bit float per component.
	ComponentHalfFloat

	// ComponentFloat is one 32-bit float per component.
	ComponentFloat
)

// String returns a human-readable name for the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentUint8:
		return "Uint8"
	case ComponentUint16:
		return "Uint16"
	case ComponentHalfFloat:
		return "HalfFloat"
	case ComponentFloat:
		return "Float"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// Bytes returns the size of one component in bytes.
func (c ComponentType) Bytes() int {
	switch c {
	case ComponentUint8:
		return 1
	case ComponentUint16, ComponentHalfFloat:
		return 2
	case ComponentFloat:
		return 4
	default:
		return 4
	}
}

// BytesPerPixel computes the memory footprint of one pixel for the given
// internal format and component type. The pool uses this once per record
// creation: memory size is width * height * BytesPerPixel.
func BytesPerPixel(f InternalFormat, c ComponentType) int {
	return f.Channels() * c.Bytes()
}
