package texpool

import "testing"

// TestFormatStrings tests the human-readable names of the format triple.
func TestFormatStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"internal R8", InternalR8.String(), "R8"},
		{"internal RGBA16F", InternalRGBA16F.String(), "RGBA16F"},
		{"internal unknown", InternalFormat(99).String(), "Unknown(99)"},
		{"pixel BGRA", PixelBGRA.String(), "BGRA"},
		{"pixel unknown", PixelFormat(99).String(), "Unknown(99)"},
		{"component half float", ComponentHalfFloat.String(), "HalfFloat"},
		{"component unknown", ComponentType(99).String(), "Unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestBytesPerPixel tests the footprint calculator over the format triple.
func TestBytesPerPixel(t *testing.T) {
	tests := []struct {
		name     string
		internal InternalFormat
		comp     ComponentType
		want     int
	}{
		{"R8 uint8", InternalR8, ComponentUint8, 1},
		{"RG8 uint8", InternalRG8, ComponentUint8, 2},
		{"RGBA8 uint8", InternalRGBA8, ComponentUint8, 4},
		{"RGBA8 uint16", InternalRGBA8, ComponentUint16, 8},
		{"RGBA16F half float", InternalRGBA16F, ComponentHalfFloat, 8},
		{"RGBA32F float", InternalRGBA32F, ComponentFloat, 16},
		{"unknown fallback", InternalFormat(99), ComponentType(99), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesPerPixel(tt.internal, tt.comp); got != tt.want {
				t.Errorf("BytesPerPixel(%v, %v) = %d, want %d", tt.internal, tt.comp, got, tt.want)
			}
		})
	}
}
