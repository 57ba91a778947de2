package parser

import "fmt"

// UsedRange returns the A1 range spanning every non-empty cell, e.g.
// "A2:AP40", and the number of non-empty cells inside it. An empty grid
// returns "" and 0.
func (g *Grid) UsedRange() (string, int) {
	minRow, maxRow, minCol, maxCol := g.dataBounds()
	if minRow < 0 {
		return "", 0
	}

	count := 0
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !g.IsEmpty(row, col) {
				count++
			}
		}
	}

	return fmt.Sprintf("%s:%s", CellName(minRow, minCol), CellName(maxRow, maxCol)), count
}

// dataBounds finds the bounding box of non-empty cells; all four values are
// -1 when there is none.
func (g *Grid) dataBounds() (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for row := range g.rows {
		for col, cell := range g.rows[row] {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = row
			}
			maxRow = row
			if minCol < 0 || col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	return
}
