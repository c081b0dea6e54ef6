// Package allrgb generates images in which every pixel has a distinct color,
// and, at 4096×4096, every one of the 2^24 24-bit colors appears exactly once.
//
// What is allrgb?
//
//	A small, dependency-light pipeline that pairs two orders:
//		• a total order over the RGB cube along a 3-D Hilbert curve
//		• a random but spatially coherent order over the pixel grid,
//		  taken from a uniformly random spanning tree
//	and paints the i-th color at the i-th pixel. Neighboring colors land on
//	neighboring pixels, so the image branches organically instead of banding.
//
// Under the hood, everything is organized in subpackages:
//
//	rgb/        Color value, packed 0xRRGGBB form, row-major Raster
//	hilbert/    curve Encode / Decode / Compare over the 256³ cube
//	palette/    evenly spaced curve samples and the 48 cube symmetries
//	gridgraph/  packed grid graph, Wilson's spanning tree, DFS / SDFS / BFS
//	abstract/   Generate: palette + tree + traversal → Raster
//	imageio/    PNG / TIFF / BMP encode and decode
//	cmd/allrgb/ command-line front end with TOML config and console logging
//
// Quick start:
//
//	res, err := abstract.Generate(4096, 4096,
//		abstract.WithSeed(42),
//		abstract.WithRandomSymmetry(),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = imageio.Save("allrgb.png", res.Raster)
//	fmt.Println(res.HasAllColors()) // true
//
// Determinism:
//
//	For fixed (rows, cols, seed, order, symmetry) the output is identical on
//	every run and platform. The spanning tree consumes exactly one random
//	stream; see gridgraph for the draw sequence.
package allrgb
