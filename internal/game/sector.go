package game

// Galaxy grid dimensions.
const (
	GridSize    = 8
	SectorCount = GridSize * GridSize
)

// Translate converts a 1-based sector number into zero-based major
// coordinates. Sectors run down each column: 1..8 are column 0 rows 0..7,
// 9..16 column 1, and so on. Anything outside [1,64] is (-1, -1).
func Translate(sector int) (majorX, majorY int) {
	if sector <= 0 || sector > SectorCount {
		return -1, -1
	}
	return (sector - 1) / GridSize, (sector - 1) % GridSize
}

// SectorAt is the inverse of Translate. It returns 0 for coordinates off the grid.
func SectorAt(majorX, majorY int) int {
	if majorX < 0 || majorX >= GridSize || majorY < 0 || majorY >= GridSize {
		return 0
	}
	return majorX*GridSize + majorY + 1
}

// ValidSector reports whether s names a sector of the galaxy grid.
func ValidSector(s int) bool {
	return s >= 1 && s <= SectorCount
}
