package bag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todd-working/qwirkle/tile"
)

func TestNewHasFullBag(t *testing.T) {
	b := New(42)
	assert.Equal(t, tile.TotalTiles, b.Remaining())
	assert.False(t, b.IsEmpty())
}

func TestDrawReducesRemaining(t *testing.T) {
	b := New(1)
	drawn := b.Draw(6)
	assert.Len(t, drawn, 6)
	assert.Equal(t, tile.TotalTiles-6, b.Remaining())
}

func TestDrawClampsToRemaining(t *testing.T) {
	b := New(1)
	b.Draw(tile.TotalTiles - 3)
	drawn := b.Draw(10)
	assert.Len(t, drawn, 3)
	assert.True(t, b.IsEmpty())

	more := b.Draw(5)
	assert.Empty(t, more)
}

func TestReturnRestoresCount(t *testing.T) {
	b := New(7)
	drawn := b.Draw(6)
	b.Return(drawn)
	assert.Equal(t, tile.TotalTiles, b.Remaining())
}

func TestPeekDoesNotMutate(t *testing.T) {
	b := New(99)
	before := b.Remaining()
	peeked := b.Peek(5)
	assert.Len(t, peeked, 5)
	assert.Equal(t, before, b.Remaining())
	assert.Equal(t, peeked, b.Draw(5))
}

func TestSameSeedProducesSameShuffle(t *testing.T) {
	a := New(123)
	b := New(123)
	assert.Equal(t, a.Peek(108), b.Peek(108))
}

func TestCloneIsIndependent(t *testing.T) {
	original := New(5)
	clone := original.Clone(999)

	original.Draw(10)
	assert.Equal(t, tile.TotalTiles, clone.Remaining())
}
