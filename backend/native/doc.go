// Package native implements the texpool device boundary on top of
// gogpu/wgpu HAL devices.
//
// The package maps the pool's GL-style format triples onto
// gputypes.TextureFormat values, tracks the handle-to-texture mapping,
// and batches destruction into a single locked pass. Each adapter owns
// the textures it created; destroying the adapter destroys them all.
package native
