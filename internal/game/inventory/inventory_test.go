package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
)

func TestInventory_AcquisitionOrderAndDuplicates(t *testing.T) {
	inv := inventory.NewInventory("stimpack")
	inv.Add("ore_chunk", "stimpack")

	assert.Equal(t, []string{"stimpack", "ore_chunk", "stimpack"}, inv.Items())
	assert.Equal(t, 2, inv.Count("stimpack"))
	assert.Equal(t, 3, inv.Len())
}

func TestInventory_RemoveFirstOccurrence(t *testing.T) {
	inv := inventory.NewInventory("stimpack", "ore_chunk", "stimpack")
	assert.True(t, inv.Remove("stimpack"))
	assert.Equal(t, []string{"ore_chunk", "stimpack"}, inv.Items())
	assert.False(t, inv.Remove("gate_key"))
}

func TestInventory_Has(t *testing.T) {
	inv := inventory.NewInventory("laser_rifle")
	assert.True(t, inv.Has("laser_rifle"))
	assert.False(t, inv.Has("shield_module"))
	assert.False(t, inv.Has(""))
}

func TestInventory_HasAll(t *testing.T) {
	inv := inventory.NewInventory("a", "b")
	assert.True(t, inv.HasAll([]string{"a", "b"}))
	assert.False(t, inv.HasAll([]string{"a", "c"}))
	assert.True(t, inv.HasAll(nil))
}

func TestInventory_ItemsIsSnapshot(t *testing.T) {
	inv := inventory.NewInventory("a")
	snap := inv.Items()
	snap[0] = "z"
	assert.Equal(t, []string{"a"}, inv.Items())
}

func TestInventory_Property_AddThenRemoveRestoresCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c"})).Draw(rt, "ids")
		inv := inventory.NewInventory(ids...)
		id := rapid.SampledFrom([]string{"a", "b", "c"}).Draw(rt, "id")
		before := inv.Count(id)

		inv.Add(id)
		assert.Equal(rt, before+1, inv.Count(id))
		assert.True(rt, inv.Remove(id))
		assert.Equal(rt, before, inv.Count(id))
		assert.Equal(rt, len(ids), inv.Len())
	})
}
