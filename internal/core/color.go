package core

// Color identifies how a screen cell is styled.
// The platform layer maps each value to a terminal style.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorMuted
	ColorFrame
	ColorEmptyTile
	ColorOverlay
)

// Tile colors, one per value from 2 to 128 and beyond.
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTileHigh // anything above 128
)

// TileColor returns the color for a tile value. Zero is an empty slot.
func TileColor(value int) Color {
	switch value {
	case 0:
		return ColorEmptyTile
	case 2:
		return ColorTile2
	case 4:
		return ColorTile4
	case 8:
		return ColorTile8
	case 16:
		return ColorTile16
	case 32:
		return ColorTile32
	case 64:
		return ColorTile64
	case 128:
		return ColorTile128
	default:
		return ColorTileHigh
	}
}
