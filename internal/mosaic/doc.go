// Package mosaic turns a raster image into a stud mosaic panel.
//
// The pipeline runs in fixed stages: an optional grayscale pass, a
// downscale so one source pixel becomes one stud, an optional color
// reduction, grid extraction, and finally tile rendering onto a canvas.
// Each stage is exported on its own so callers can run a partial
// pipeline, but Generate wires them together in the supported order.
//
// When palette mode is enabled every stud color is matched onto the
// palette before rendering and the per-color usage is counted, which is
// what a physical build needs for its parts list.
package mosaic
