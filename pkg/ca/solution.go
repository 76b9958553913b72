package ca

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ModelState reconstructs a cell's Boolean state from its global code
// and a satisfying model of true literals (1-based, as parsed from a
// solver's "v" lines): code 0 is dead, code 1 is alive, code >= 2 is
// alive iff the model contains code-1.
func ModelState(code int, model map[int]bool) bool {
	switch code {
	case 0:
		return false
	case 1:
		return true
	default:
		return model[code-1]
	}
}

// Grid is a reconstructed [generation][row][column] Boolean array.
type Grid [][][]bool

// ReconstructGrid walks every point of bounds, mapping its code through
// codeAt and model into a concrete Boolean grid.
func ReconstructGrid(bounds Bounds, codeAt func(Point) int, model map[int]bool) Grid {
	grid := make(Grid, bounds.SizeT())
	for t := bounds.T.Min; t <= bounds.T.Max; t++ {
		rows := make([][]bool, bounds.SizeY())
		for y := bounds.Y.Min; y <= bounds.Y.Max; y++ {
			row := make([]bool, bounds.SizeX())
			for x := bounds.X.Min; x <= bounds.X.Max; x++ {
				row[x-bounds.X.Min] = ModelState(codeAt(Point{X: x, Y: y, T: t}), model)
			}
			rows[y-bounds.Y.Min] = row
		}
		grid[t-bounds.T.Min] = rows
	}
	return grid
}

// WriteCSV persists a Grid as generation blocks separated by a blank
// line, one comma-separated row per line ("1" alive, "0" dead). It has
// no machine contract beyond round-trippable legibility.
func WriteCSV(w io.Writer, grid Grid) error {
	for i, rows := range grid {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		writer := csv.NewWriter(w)
		for _, row := range rows {
			record := make([]string, len(row))
			for j, alive := range row {
				if alive {
					record[j] = "1"
				} else {
					record[j] = "0"
				}
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
	}
	return nil
}
