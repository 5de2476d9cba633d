// Package rayfork provides a portable, backend-agnostic 2D/3D graphics
// middleware: mesh and material entity types, container-format decoders
// for glTF/OBJ/DDS/KTX/PKM/IQM, a draw-call batcher that decomposes
// shapes into triangles/lines/quads, and a GPU sink contract applications
// implement to receive those draw calls on whatever backend they run.
//
// # Overview
//
// rayfork never owns a GPU device or a window. An application supplies
// a gpusink.Sink backed by its own rendering stack (for example, wgpu
// via gogpu/gpucontext) and installs it on a Context. From then on,
// Context's draw and batch.Batcher's shape-decomposition calls record
// vertices into the sink, flushing whenever a buffer limit or scope
// change (3D/2D, render-to-texture, scissor, shader) would make further
// accumulation invisible to already-queued vertices.
//
// # Architecture
//
//   - mathx: vectors, matrices, quaternions, colors, rects, scalar helpers
//   - pixelformat, rfimage, imageops: pixel format conversion and image editing
//   - container/{dds,ktx,pkm,iqm,gltf,obj}: asset format decoders
//   - model: mesh/material/model/animation entity types
//   - gpusink: the GPU sink contract backends implement
//   - batch: the draw-call batcher and shape decomposition
//   - textfont: glyph atlas packing and text measurement
//   - procmesh: procedural mesh generators
//
// # Coordinate system
//
// Screen-space coordinates place the origin at the top-left, X
// increasing right and Y increasing down; 3D world space is
// right-handed with Y up, matching the conventions of the container
// formats this package decodes.
package rayfork
