// Package shaders provides the embedded GLSL sources for the scene program.
package shaders

import _ "embed"

// SceneVertexShader transforms fixed-function vertex attributes into eye space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades either font glyphs or lit, optionally textured surfaces.
//
//go:embed scene.frag
var SceneFragmentShader string
