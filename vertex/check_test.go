package vertex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

func TestCheckCompatibilityAccepts(t *testing.T) {
	d := buildTwoSlotLayout()
	attributes := []common.AttributeSlot{
		{Name: "position", Location: 0, Size: 1, GLType: format.AttributeTypeFloatVector3.GLType()},
		{Name: "normal", Location: 1, Size: 1, GLType: format.AttributeTypeFloatVector3.GLType()},
		{Name: "model", Location: 4, Size: 1, GLType: format.AttributeTypeFloatMatrix4x4.GLType()},
	}
	assert.NoError(t, CheckCompatibility(d, attributes))
}

func TestCheckCompatibilityMissingLocation(t *testing.T) {
	d := buildTwoSlotLayout()
	attributes := []common.AttributeSlot{
		{Name: "tangent", Location: 7, Size: 1, GLType: format.AttributeTypeFloatVector4.GLType()},
	}
	err := CheckCompatibility(d, attributes)
	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, uint32(7), missing.Location)
	assert.Equal(t, "tangent", missing.Name)
}

func TestCheckCompatibilityTypeMismatch(t *testing.T) {
	d := buildTwoSlotLayout()
	attributes := []common.AttributeSlot{
		// Location 0 holds Float3F32 data but the shader wants a vec4.
		{Name: "position", Location: 0, Size: 1, GLType: format.AttributeTypeFloatVector4.GLType()},
	}
	err := CheckCompatibility(d, attributes)
	var mismatch *AttributeTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "position", mismatch.Name)
	assert.Equal(t, format.Float3F32, mismatch.Format)
}

func TestCheckCompatibilityRejectsNonAttributeGLType(t *testing.T) {
	d := buildTwoSlotLayout()
	attributes := []common.AttributeSlot{
		{Name: "weird", Location: 0, Size: 1, GLType: 0x8B5E}, // SAMPLER_2D
	}
	err := CheckCompatibility(d, attributes)
	var mismatch *AttributeTypeMismatchError
	assert.True(t, errors.As(err, &mismatch))
}
