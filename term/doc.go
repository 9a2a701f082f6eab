// Package term runs the lizard in a terminal.
//
// A [Canvas] rasterizes the painter's primitives into character cells: lines
// with Bresenham, circles and polygons by testing cell centers. Colors are
// composited over the black background with go-colorful and written as
// 24-bit tcell colors. [Loop] maps terminal mouse motion to the creature's
// target and steps the animation on a fixed ticker.
package term
