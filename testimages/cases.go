// seehuhn.de/go/redeye - red-eye removal for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testimages

var singleCases = []Case{
	{
		Name:   "bar",
		Width:  9,
		Height: 9,
		Eyes:   []Eye{{Row: 2, Col: 2, Pattern: Bar}},
	},
	{
		Name:   "line",
		Width:  9,
		Height: 9,
		Eyes:   []Eye{{Row: 2, Col: 2, Pattern: Line}},
	},
	{
		Name:   "plus",
		Width:  9,
		Height: 9,
		Eyes:   []Eye{{Row: 2, Col: 2, Pattern: Plus}},
	},
	{
		Name:   "cross",
		Width:  9,
		Height: 9,
		Eyes:   []Eye{{Row: 2, Col: 2, Pattern: Cross}},
	},
}

var multiCases = []Case{
	{
		Name:   "two_apart",
		Width:  16,
		Height: 14,
		Eyes: []Eye{
			{Row: 1, Col: 2, Pattern: Bar},
			{Row: 8, Col: 9, Pattern: Cross},
		},
	},
	{
		// The two boxes share their touching side column, so those
		// five pixels belong to both eyes.
		Name:   "shared_column",
		Width:  16,
		Height: 8,
		Eyes: []Eye{
			{Row: 1, Col: 2, Pattern: Bar},
			{Row: 1, Col: 6, Pattern: Bar},
		},
	},
}

var negativeCases = []Case{
	{
		Name:   "blank",
		Width:  12,
		Height: 10,
	},
	{
		// top and bottom dashes without either side column
		Name:   "dashes_only",
		Width:  12,
		Height: 10,
		Extra:  dashPair(2, 4),
	},
	{
		// full ring, but the interior matches no pupil pattern
		Name:   "broken_pupil",
		Width:  12,
		Height: 10,
		Eyes:   []Eye{{Row: 2, Col: 3, Pattern: Empty}},
		Extra:  []Spot{{Row: 3, Col: 6, Red: eyeRed}},
	},
}

var edgeCases = []Case{
	{
		// the bottom rows of the box fall past the end of the buffer
		Name:   "bottom_clipped",
		Width:  9,
		Height: 6,
		Eyes:   []Eye{{Row: 3, Col: 2, Pattern: Bar}},
	},
	{
		// the box runs off the right edge, wrapping in the flat buffer
		Name:   "right_clipped",
		Width:  9,
		Height: 9,
		Eyes:   []Eye{{Row: 2, Col: 6, Pattern: Bar}},
	},
}

// dashPair paints the three-pixel top and bottom dashes of an eye box
// whose north-west corner is at (row, col), with no side pixels.
func dashPair(row, col int) []Spot {
	var spots []Spot
	for i := 1; i <= 3; i++ {
		spots = append(spots,
			Spot{Row: row, Col: col + i, Red: eyeRed},
			Spot{Row: row + 4, Col: col + i, Red: eyeRed})
	}
	return spots
}
