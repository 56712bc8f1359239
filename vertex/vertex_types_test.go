package vertex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardVertexMarshal(t *testing.T) {
	v := StandardVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.5, 0.25},
		Color:    [4]float32{1, 0, 0, 1},
	}
	require.Equal(t, 48, v.Size())
	buf := v.Marshal()
	require.Len(t, buf, 48)

	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[28:32])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[44:48])))
}

func TestInstanceTransformMarshal(t *testing.T) {
	var tr InstanceTransform
	for i := range tr.Model {
		tr.Model[i] = float32(i)
	}
	require.Equal(t, 64, tr.Size())
	buf := tr.Marshal()
	require.Len(t, buf, 64)
	for i := 0; i < 16; i++ {
		assert.Equal(t, float32(i), math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:(i+1)*4])))
	}
}

func TestStandardVertexAttributesMatchStructLayout(t *testing.T) {
	attrs := StandardVertexAttributes()
	require.Len(t, attrs, 4)
	var offset uint32
	for i, a := range attrs {
		assert.Equal(t, uint32(i), a.Location)
		assert.Equal(t, offset, a.OffsetBytes)
		offset += a.Format.SizeBytes()
	}
	v := StandardVertex{}
	assert.Equal(t, v.Size(), int(offset), "descriptor table does not cover the struct")
}

func TestStandardLayout(t *testing.T) {
	d := StandardLayout()
	slots := d.BufferSlots()
	require.Len(t, slots, 2)
	assert.Len(t, slots[0].Attributes(), 4)
	assert.Len(t, slots[1].Attributes(), 1)

	// The instance matrix occupies locations 4-7.
	ops := slots[1].PointerOps()
	require.Len(t, ops, 4)
	assert.Equal(t, uint32(4), ops[0].Location)
	assert.Equal(t, uint32(7), ops[3].Location)
}
