package breakout

import (
	"fmt"

	"github.com/vovakirdan/nexus-breakout/internal/registry"
)

func init() {
	registry.Register(registry.Pack{
		ID:    "nexus",
		Title: "Nexus",
		Levels: []registry.LevelDef{
			{Name: "Warm Up", Grid: ParseGrid(
				"22222222222222",
				"44444444444444",
				"55555555555555",
				"66666666666666",
			)},
			{Name: "Gold Rush", Grid: ParseGrid(
				"11111111111111",
				"23322233222332",
				"44444444444444",
				"5.5.5.5.5.5.5.",
				".6.6.6.6.6.6.6",
			)},
			{Name: "Pyramid", Grid: ParseGrid(
				"......33......",
				".....2222.....",
				"....444444....",
				"...55555555...",
				"..6666666666..",
				".777777777777.",
			)},
			{Name: "Vault", Grid: ParseGrid(
				"11111111111111",
				"1............1",
				"1.2244664422.1",
				"1.2244664422.1",
				"1............1",
				"11113333331111",
			)},
			{Name: "Nexus Core", Grid: ParseGrid(
				"3.3.3.3.3.3.3.",
				"12121212121212",
				"44444444444444",
				"57575757575757",
				"66666666666666",
				"11111111111111",
			)},
		},
	})

	registry.Register(registry.Pack{
		ID:    "classic",
		Title: "Classic",
		Levels: []registry.LevelDef{
			{Name: "Classic", Grid: ParseGrid(
				"2222222222222222",
				"7777777777777777",
				"3333333333333333",
				"5555555555555555",
				"4444444444444444",
			)},
			{Name: "Pyramid", Grid: ParseGrid(
				"......4444......",
				"....44444444....",
				"..444444444444..",
				"4444444444444444",
			)},
			{Name: "Checkerboard", Grid: ParseGrid(
				"2.2.2.2.2.2.2.2.",
				".5.5.5.5.5.5.5.5",
				"2.2.2.2.2.2.2.2.",
				".5.5.5.5.5.5.5.5",
			)},
			{Name: "Fortress", Grid: ParseGrid(
				"1111111111111111",
				"1..............1",
				"1.666666666666.1",
				"1.666666666666.1",
				"1..............1",
				"1111111111111111",
			)},
		},
	})
}

// ParseGrid builds a level grid from ASCII rows.
// Characters:
//
//	'.' or ' ' = empty
//	'1'-'7'    = brick type code
//
// Panics on any other character; it is meant for built-in layouts.
func ParseGrid(lines ...string) [][]int {
	grid := make([][]int, len(lines))
	for row, line := range lines {
		grid[row] = make([]int, len(line))
		for col := range len(line) {
			ch := line[col]
			switch {
			case ch == '.' || ch == ' ':
				grid[row][col] = 0
			case ch >= '1' && ch <= '7':
				grid[row][col] = int(ch - '0')
			default:
				panic(fmt.Sprintf("breakout: bad grid char %q at (%d,%d)", ch, row, col))
			}
		}
	}
	return grid
}
