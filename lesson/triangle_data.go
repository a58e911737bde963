package lesson

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// Interleaved vertex layout: x, y, z, r, g, b, a.
const (
	bytesPerFloat       = 4
	positionDataSize    = 3
	colorDataSize       = 4
	floatsPerVertex     = positionDataSize + colorDataSize
	strideBytes         = floatsPerVertex * bytesPerFloat
	positionOffset      = 0
	colorOffset         = positionDataSize * bytesPerFloat
	triangleVertexCount = 3
)

var triangleVertexData = f32.Bytes(binary.LittleEndian,
	-0.5, -0.25, 0.0, // bottom left
	1.0, 0.0, 0.0, 1.0, // red

	0.5, -0.25, 0.0, // bottom right
	0.0, 0.0, 1.0, 1.0, // blue

	0.0, 0.559016994, 0.0, // top
	0.0, 1.0, 0.0, 1.0, // green
)
