// Package render hosts the output renderers for scene trees.
//
// Subpackage svg writes millimeter-true SVG suitable for Inkscape and
// laser/engraving workflows. Subpackage raster rasterizes scenes to PNG
// for quick previews.
package render
