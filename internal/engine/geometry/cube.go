package geometry

// CubeID identifies the shared unit cube.
const CubeID = "cube"

var cube = &Geometry{
	ID: CubeID,
	Vertices: []float32{
		// Front face
		-1, -1, 1,
		1, -1, 1,
		1, 1, 1,
		-1, 1, 1,
		// Back face
		-1, -1, -1,
		-1, 1, -1,
		1, 1, -1,
		1, -1, -1,
		// Top face
		-1, 1, -1,
		-1, 1, 1,
		1, 1, 1,
		1, 1, -1,
		// Bottom face
		-1, -1, -1,
		1, -1, -1,
		1, -1, 1,
		-1, -1, 1,
		// Right face
		1, -1, -1,
		1, 1, -1,
		1, 1, 1,
		1, -1, 1,
		// Left face
		-1, -1, -1,
		-1, -1, 1,
		-1, 1, 1,
		-1, 1, -1,
	},
	Normals: []float32{
		0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
		0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1,
		0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0,
		0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0,
		1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
		-1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0,
	},
	Indices: []uint16{
		0, 1, 2, 0, 2, 3, // front
		4, 5, 6, 4, 6, 7, // back
		8, 9, 10, 8, 10, 11, // top
		12, 13, 14, 12, 14, 15, // bottom
		16, 17, 18, 16, 18, 19, // right
		20, 21, 22, 20, 22, 23, // left
	},
}

// Cube returns the 2x2x2 cube centered on the origin.
// The returned geometry is shared and must not be modified.
func Cube() *Geometry {
	return cube
}
