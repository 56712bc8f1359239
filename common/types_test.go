package common

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestDimensionsMinIsComponentWise(t *testing.T) {
	a := Dimensions{Width: 1024, Height: 200}
	b := Dimensions{Width: 300, Height: 900}
	want := Dimensions{Width: 300, Height: 200}
	assert.Equal(t, want, a.Min(b))
	assert.Equal(t, want, b.Min(a))
	assert.Equal(t, a, a.Min(a))
}

func TestInputRateStepMode(t *testing.T) {
	assert.Equal(t, wgpu.VertexStepModeVertex, InputRatePerVertex.StepMode())
	assert.Equal(t, wgpu.VertexStepModeInstance, InputRatePerInstance.StepMode())
	assert.Equal(t, "per-vertex", InputRatePerVertex.String())
	assert.Equal(t, "per-instance", InputRatePerInstance.String())
}

func TestClearColorConversion(t *testing.T) {
	c := ClearColor{0.25, 0.5, 0.75, 1}
	assert.Equal(t, wgpu.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}, c.Color())
}
