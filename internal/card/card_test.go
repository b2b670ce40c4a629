package card

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var abruptDecay = Template{
	Name:  "Abrupt Decay",
	Query: "abrupt decay",
	ID:    "1L56-vQ08leCTGu7orNMlWYKiXqWAnTiO",
}

func TestForSlot(t *testing.T) {
	entry := ForSlot(abruptDecay, 0)

	assert.Equal(t, "1L56-vQ08leCTGu7orNMlWYKiXqWA0000", entry.ID)
	assert.Equal(t, 0, entry.Slot)
	assert.Equal(t, "Abrupt Decay (1).jpg", entry.Name)
	assert.Equal(t, "abrupt decay", entry.Query)
}

func TestForSlotNamesAreNumberedFromOne(t *testing.T) {
	cases := []struct {
		slot int
		name string
	}{
		{0, "Abrupt Decay (1).jpg"},
		{1, "Abrupt Decay (2).jpg"},
		{10, "Abrupt Decay (11).jpg"},
		{149, "Abrupt Decay (150).jpg"},
	}

	for _, c := range cases {
		entry := ForSlot(abruptDecay, c.slot)
		assert.Equal(t, c.name, entry.Name, "slot %d", c.slot)
		assert.Equal(t, c.slot, entry.Slot)
	}
}

func TestUniqueIDPreservesLength(t *testing.T) {
	for _, slot := range []int{0, 1, 42, 999, 9999} {
		id := UniqueID(abruptDecay.ID, slot)

		assert.Len(t, id, len(abruptDecay.ID), "slot %d", slot)
		assert.Equal(t, abruptDecay.ID[:len(abruptDecay.ID)-SuffixWidth], id[:len(id)-SuffixWidth])
		assert.Equal(t, fmt.Sprintf("%04d", slot), id[len(id)-SuffixWidth:])
	}
}

func TestUniqueIDZeroPadsShortSlots(t *testing.T) {
	assert.Equal(t, "1L56-vQ08leCTGu7orNMlWYKiXqWA0007", UniqueID(abruptDecay.ID, 7))
	assert.Equal(t, "1L56-vQ08leCTGu7orNMlWYKiXqWA0150", UniqueID(abruptDecay.ID, 150))
	assert.Equal(t, "1L56-vQ08leCTGu7orNMlWYKiXqWA9999", UniqueID(abruptDecay.ID, 9999))
}

// Slots past 9999 no longer fit in the replaced suffix. The padded number
// keeps all its digits and the derived ID grows, it is never truncated.
func TestUniqueIDWidensForFiveDigitSlots(t *testing.T) {
	id := UniqueID(abruptDecay.ID, 10000)

	assert.Equal(t, "1L56-vQ08leCTGu7orNMlWYKiXqWA10000", id)
	assert.Len(t, id, len(abruptDecay.ID)+1)
}
