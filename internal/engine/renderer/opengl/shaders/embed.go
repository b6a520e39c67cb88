// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ObjectVertexShader transforms mesh vertices and normals.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader shades meshes with one directional light.
//
//go:embed object.frag
var ObjectFragmentShader string
