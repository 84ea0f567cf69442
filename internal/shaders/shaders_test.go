package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcesDeclareUniforms(t *testing.T) {
	for _, src := range []Source{Terrain(), Object(), Textured()} {
		t.Run(src.Name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(src.Vertex, "#version 330"))
			assert.True(t, strings.HasPrefix(src.Fragment, "#version 330"))
			assert.Contains(t, src.Vertex, "in vec3 vertexPosition;")

			both := src.Vertex + src.Fragment
			for _, u := range src.Uniforms {
				// Struct members are declared through the struct, not by their dotted name.
				if i := strings.IndexByte(u, '.'); i > 0 {
					assert.Contains(t, both, "uniform Light "+u[:i]+";")
					assert.Contains(t, both, u[i+1:]+";")
					continue
				}
				assert.Contains(t, both, " "+u+";", "uniform %s", u)
			}
		})
	}
}

func TestAttributeSets(t *testing.T) {
	assert.Contains(t, Terrain().Vertex, "in vec2 vertexTexCoord;")
	assert.Contains(t, Textured().Vertex, "in vec2 vertexTexCoord;")
	assert.Contains(t, Object().Vertex, "in vec3 vertexNormal;")
	assert.NotContains(t, Object().Vertex, "vertexTexCoord")
}
