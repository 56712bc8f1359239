package vertex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/resource"
)

func testRegion(t *testing.T, label string, size uint64) BufferRegion {
	t.Helper()
	buf := resource.NewBuffer(label, size, nil)
	region, err := resource.NewBufferRegion(buf, 0, size)
	require.NoError(t, err)
	return BufferRegion{Region: region, StrideBytes: 16, Rate: common.InputRatePerVertex}
}

func TestBufferSlotsEncoderPreservesInsertionOrder(t *testing.T) {
	e := NewBufferSlotsEncoder()
	for i := 0; i < MaxBufferSlots; i++ {
		e.AddRegion(testRegion(t, fmt.Sprintf("buf-%d", i), uint64(64+i)))
	}
	slots := e.Finish()
	require.Equal(t, MaxBufferSlots, slots.Len())
	for i, r := range slots.Regions() {
		assert.Equal(t, fmt.Sprintf("buf-%d", i), r.Region.Buffer().Label(), "slot %d out of order", i)
		assert.Equal(t, uint64(64+i), r.Region.SizeBytes())
	}
}

func TestBufferSlotsEncoderPanicsPastCapacity(t *testing.T) {
	e := NewBufferSlotsEncoder()
	for i := 0; i < MaxBufferSlots; i++ {
		e.AddRegion(testRegion(t, "buf", 64))
	}
	assert.Panics(t, func() { e.AddRegion(testRegion(t, "overflow", 64)) })
}

func TestBufferSlotsEncoderPanicsAfterFinish(t *testing.T) {
	e := NewBufferSlotsEncoder()
	e.AddRegion(testRegion(t, "buf", 64))
	e.Finish()
	assert.Panics(t, func() { e.AddRegion(testRegion(t, "late", 64)) })
	assert.Panics(t, func() { e.Finish() })
}
