package native

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texpool"
)

// Device errors.
var (
	// ErrNilHALDevice is returned when creating an adapter without a HAL device.
	ErrNilHALDevice = errors.New("native: HAL device is nil")

	// ErrUnsupportedFormat is returned when a format triple has no
	// gputypes.TextureFormat equivalent.
	ErrUnsupportedFormat = errors.New("native: unsupported format triple")

	// ErrUnknownHandle is returned when operating on a handle this
	// adapter did not create.
	ErrUnknownHandle = errors.New("native: unknown texture handle")
)

// Device implements texpool.Device over a hal.Device.
//
// Each created texture receives a monotonically increasing handle; the
// adapter maintains the mapping between handles and backend resources,
// following the wgpu adapter convention of opaque uint64 IDs.
//
// Device is safe for concurrent use.
type Device struct {
	mu       sync.Mutex
	hal      hal.Device
	textures map[texpool.Handle]hal.Texture
	samplers map[texpool.Handle]hal.Sampler
	nextID   uint64
	lastErr  error
}

// NewDevice creates a texpool device adapter over a HAL device.
func NewDevice(device hal.Device) (*Device, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	return &Device{
		hal:      device,
		textures: make(map[texpool.Handle]hal.Texture),
		samplers: make(map[texpool.Handle]hal.Sampler),
	}, nil
}

// CreateTexture2D allocates GPU storage with the exact requested shape
// and format, returning an opaque handle.
func (d *Device) CreateTexture2D(desc texpool.TextureDesc) (texpool.Handle, error) {
	format, err := halFormat(desc.Internal, desc.Pixel, desc.Component)
	if err != nil {
		d.setErr(err)
		return texpool.InvalidHandle, err
	}

	//nolint:gosec // G115: the pool validates dimensions positive.
	tex, err := d.hal.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              uint32(desc.Width),
			Height:             uint32(desc.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		err = fmt.Errorf("native: create texture: %w", err)
		d.setErr(err)
		return texpool.InvalidHandle, err
	}

	d.mu.Lock()
	d.nextID++
	h := texpool.Handle(d.nextID)
	d.textures[h] = tex
	d.mu.Unlock()
	return h, nil
}

// Bind is a no-op on this backend: wgpu has no global texture bind
// points, binding is expressed through bind groups at draw time. The
// method exists so GL-style callers keep a uniform call sequence.
func (d *Device) Bind(texpool.Handle) {}

// SetSampling creates (or replaces) the sampler associated with a
// texture handle.
func (d *Device) SetSampling(h texpool.Handle, s texpool.Sampling) error {
	d.mu.Lock()
	_, ok := d.textures[h]
	d.mu.Unlock()
	if !ok {
		err := fmt.Errorf("%w: %d", ErrUnknownHandle, h)
		d.setErr(err)
		return err
	}

	sampler, err := d.hal.CreateSampler(&hal.SamplerDescriptor{
		Label:        "texpool_sampler",
		AddressModeU: halAddressMode(s.WrapU),
		AddressModeV: halAddressMode(s.WrapV),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    halFilterMode(s.MagFilter),
		MinFilter:    halFilterMode(s.MinFilter),
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		err = fmt.Errorf("native: create sampler: %w", err)
		d.setErr(err)
		return err
	}

	d.mu.Lock()
	if old, ok := d.samplers[h]; ok {
		d.hal.DestroySampler(old)
	}
	d.samplers[h] = sampler
	d.mu.Unlock()
	return nil
}

// DestroyTextures releases the given textures and their samplers in one
// locked pass. Unknown handles are ignored.
func (d *Device) DestroyTextures(handles []texpool.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, h := range handles {
		if tex, ok := d.textures[h]; ok {
			d.hal.DestroyTexture(tex)
			delete(d.textures, h)
		}
		if sampler, ok := d.samplers[h]; ok {
			d.hal.DestroySampler(sampler)
			delete(d.samplers, h)
		}
	}
}

// Err returns the most recent device error, or nil.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Texture returns the underlying HAL texture for a handle, for render
// integration (bind group construction, uploads).
func (d *Device) Texture(h texpool.Handle) (hal.Texture, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	tex, ok := d.textures[h]
	return tex, ok
}

// Sampler returns the HAL sampler associated with a handle, if any.
func (d *Device) Sampler(h texpool.Handle) (hal.Sampler, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sampler, ok := d.samplers[h]
	return sampler, ok
}

// Destroy releases every resource this adapter still owns. The adapter
// should not be used after Destroy.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for h, tex := range d.textures {
		d.hal.DestroyTexture(tex)
		delete(d.textures, h)
	}
	for h, sampler := range d.samplers {
		d.hal.DestroySampler(sampler)
		delete(d.samplers, h)
	}
}

func (d *Device) setErr(err error) {
	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
}

// halFormat maps a GL-style format triple to a gputypes.TextureFormat.
// Only triples with a direct WebGPU equivalent are supported; the pool
// logs and degrades on anything else.
func halFormat(internal texpool.InternalFormat, pixel texpool.PixelFormat, comp texpool.ComponentType) (gputypes.TextureFormat, error) {
	switch {
	case internal == texpool.InternalR8 && comp == texpool.ComponentUint8:
		return gputypes.TextureFormatR8Unorm, nil
	case internal == texpool.InternalRG8 && comp == texpool.ComponentUint8:
		return gputypes.TextureFormatRG8Unorm, nil
	case internal == texpool.InternalRGBA8 && comp == texpool.ComponentUint8:
		if pixel == texpool.PixelBGRA {
			return gputypes.TextureFormatBGRA8Unorm, nil
		}
		return gputypes.TextureFormatRGBA8Unorm, nil
	case internal == texpool.InternalRGBA16F && comp == texpool.ComponentHalfFloat:
		return gputypes.TextureFormatRGBA16Float, nil
	case internal == texpool.InternalRGBA32F && comp == texpool.ComponentFloat:
		return gputypes.TextureFormatRGBA32Float, nil
	default:
		return gputypes.TextureFormatUndefined,
			fmt.Errorf("%w: %v/%v/%v", ErrUnsupportedFormat, internal, pixel, comp)
	}
}

func halFilterMode(f texpool.FilterMode) gputypes.FilterMode {
	if f == texpool.FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

func halAddressMode(w texpool.WrapMode) gputypes.AddressMode {
	if w == texpool.WrapRepeat {
		return gputypes.AddressModeRepeat
	}
	return gputypes.AddressModeClampToEdge
}
