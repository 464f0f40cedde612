package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/tile"
)

func TestIsValidLineEmptyAndSingle(t *testing.T) {
	assert.True(t, IsValidLine(nil))
	assert.True(t, IsValidLine([]tile.Tile{{Shape: tile.Circle, Color: tile.Red}}))
}

func TestIsValidLineSameColor(t *testing.T) {
	tiles := []tile.Tile{
		{Shape: tile.Circle, Color: tile.Red},
		{Shape: tile.Square, Color: tile.Red},
		{Shape: tile.Star, Color: tile.Red},
	}
	assert.True(t, IsValidLine(tiles))
}

func TestIsValidLineSameShape(t *testing.T) {
	tiles := []tile.Tile{
		{Shape: tile.Circle, Color: tile.Red},
		{Shape: tile.Circle, Color: tile.Blue},
	}
	assert.True(t, IsValidLine(tiles))
}

func TestIsValidLineRejectsMixed(t *testing.T) {
	tiles := []tile.Tile{
		{Shape: tile.Circle, Color: tile.Red},
		{Shape: tile.Square, Color: tile.Blue},
	}
	assert.False(t, IsValidLine(tiles))
}

func TestIsValidLineRejectsDuplicate(t *testing.T) {
	tiles := []tile.Tile{
		{Shape: tile.Circle, Color: tile.Red},
		{Shape: tile.Circle, Color: tile.Red},
	}
	assert.False(t, IsValidLine(tiles))
}

func TestIsValidLineRejectsTooLong(t *testing.T) {
	tiles := make([]tile.Tile, 7)
	for i := range tiles {
		tiles[i] = tile.Tile{Shape: tile.Circle, Color: tile.Color(i)}
	}
	assert.False(t, IsValidLine(tiles))
}

func TestValidatePlacementFirstMoveMustBeOrigin(t *testing.T) {
	b := board.New()
	tl := tile.Tile{Shape: tile.Circle, Color: tile.Red}
	assert.False(t, ValidatePlacement(b, board.Position{Row: 1, Col: 1}, tl))
	assert.True(t, ValidatePlacement(b, board.Position{Row: 0, Col: 0}, tl))
}

func TestValidatePlacementRequiresNeighbor(t *testing.T) {
	b := board.New()
	b.Set(board.Position{Row: 0, Col: 0}, tile.Tile{Shape: tile.Circle, Color: tile.Red})

	isolated := tile.Tile{Shape: tile.Square, Color: tile.Blue}
	assert.False(t, ValidatePlacement(b, board.Position{Row: 5, Col: 5}, isolated))

	adjacent := tile.Tile{Shape: tile.Square, Color: tile.Red}
	assert.True(t, ValidatePlacement(b, board.Position{Row: 0, Col: 1}, adjacent))
}

func TestValidatePlacementRejectsOccupied(t *testing.T) {
	b := board.New()
	pos := board.Position{Row: 0, Col: 0}
	b.Set(pos, tile.Tile{Shape: tile.Circle, Color: tile.Red})
	assert.False(t, ValidatePlacement(b, pos, tile.Tile{Shape: tile.Square, Color: tile.Blue}))
}

func TestValidatePlacementLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Set(board.Position{Row: 0, Col: 0}, tile.Tile{Shape: tile.Circle, Color: tile.Red})
	before := b.Size()

	ValidatePlacement(b, board.Position{Row: 0, Col: 1}, tile.Tile{Shape: tile.Square, Color: tile.Blue})
	assert.Equal(t, before, b.Size())
}

func TestValidateMoveRejectsNonCollinear(t *testing.T) {
	placements := []Placement{
		{Pos: board.Position{Row: 0, Col: 0}, Tile: tile.Tile{Shape: tile.Circle, Color: tile.Red}},
		{Pos: board.Position{Row: 1, Col: 1}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Red}},
	}
	assert.False(t, ValidateMove(board.New(), placements))
}

func TestValidateMoveRejectsGap(t *testing.T) {
	placements := []Placement{
		{Pos: board.Position{Row: 0, Col: 0}, Tile: tile.Tile{Shape: tile.Circle, Color: tile.Red}},
		{Pos: board.Position{Row: 0, Col: 2}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Red}},
	}
	assert.False(t, ValidateMove(board.New(), placements))
}

func TestValidateMoveFirstMoveRequiresOrigin(t *testing.T) {
	placements := []Placement{
		{Pos: board.Position{Row: 0, Col: 1}, Tile: tile.Tile{Shape: tile.Circle, Color: tile.Red}},
		{Pos: board.Position{Row: 0, Col: 2}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Red}},
	}
	assert.False(t, ValidateMove(board.New(), placements))

	withOrigin := []Placement{
		{Pos: board.Position{Row: 0, Col: 0}, Tile: tile.Tile{Shape: tile.Circle, Color: tile.Red}},
		{Pos: board.Position{Row: 0, Col: 1}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Red}},
	}
	assert.True(t, ValidateMove(board.New(), withOrigin))
}

func TestValidateMoveRejectsInvalidLine(t *testing.T) {
	b := board.New()
	b.Set(board.Position{Row: 0, Col: 0}, tile.Tile{Shape: tile.Circle, Color: tile.Red})

	placements := []Placement{
		{Pos: board.Position{Row: 0, Col: 1}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Blue}},
	}
	assert.False(t, ValidateMove(b, placements))
}

func TestValidateMoveMustConnectToBoard(t *testing.T) {
	b := board.New()
	b.Set(board.Position{Row: 0, Col: 0}, tile.Tile{Shape: tile.Circle, Color: tile.Red})

	placements := []Placement{
		{Pos: board.Position{Row: 10, Col: 10}, Tile: tile.Tile{Shape: tile.Circle, Color: tile.Blue}},
		{Pos: board.Position{Row: 10, Col: 11}, Tile: tile.Tile{Shape: tile.Square, Color: tile.Blue}},
	}
	assert.False(t, ValidateMove(b, placements))
}
