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

import "seehuhn.de/go/redeye"

// Case describes one synthetic image and the eye patterns placed in it.
type Case struct {
	Name   string // lowercase a-z and _ only
	Width  int    // image width in pixels
	Height int    // image height in pixels
	Eyes   []Eye  // eye templates to draw
	Extra  []Spot // individual pixel pokes, applied after Eyes
}

// Eye places one eye template by the (row, column) of its north-west
// corner.
type Eye struct {
	Row, Col int
	Pattern  Pattern
}

// Spot sets a single pixel's red value.  Used to stage broken or
// partial patterns that the Eye templates cannot express.
type Spot struct {
	Row, Col int
	Red      int16
}

// Pattern selects the pupil drawn inside an eye's border ring.
type Pattern int

const (
	Bar   Pattern = iota // horizontal bar across the middle row
	Line                 // vertical line down the middle column
	Plus                 // Line plus the two middle-row neighbours
	Cross                // diagonal cross over the full interior
	Empty                // border ring only (classifies like Bar)
)

// eyeRed is the red value used for structural eye pixels; the
// background stays at 0.
const eyeRed int16 = 255

// Build renders the case into a fresh packed image.  Patterns hanging
// over the image edge are clipped, so truncated eyes can be staged
// near borders.
func (c Case) Build() *redeye.PackedImage {
	img := redeye.NewPackedImage(c.Width, c.Height)
	for _, e := range c.Eyes {
		e.draw(img)
	}
	for _, s := range c.Extra {
		setRed(img, s.Row, s.Col, s.Red)
	}
	return img
}

func (e Eye) draw(img *redeye.PackedImage) {
	// border ring
	for i := range 5 {
		setRed(img, e.Row, e.Col+i, eyeRed)
		setRed(img, e.Row+4, e.Col+i, eyeRed)
	}
	for i := 1; i < 4; i++ {
		setRed(img, e.Row+i, e.Col, eyeRed)
		setRed(img, e.Row+i, e.Col+4, eyeRed)
	}
	// pupil
	for _, p := range e.Pattern.inner() {
		setRed(img, e.Row+p[0], e.Col+p[1], eyeRed)
	}
}

// inner returns the pupil pixel offsets of the pattern as (row, col)
// pairs relative to the eye's north-west corner.
func (p Pattern) inner() [][2]int {
	switch p {
	case Bar:
		return [][2]int{{2, 1}, {2, 2}, {2, 3}}
	case Line:
		return [][2]int{{1, 2}, {2, 2}, {3, 2}}
	case Plus:
		return [][2]int{{1, 2}, {2, 2}, {3, 2}, {2, 1}, {2, 3}}
	case Cross:
		return [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 1}, {3, 3}}
	}
	return nil
}

// setRed sets the red channel at (row, col), ignoring out-of-range
// coordinates.
func setRed(img *redeye.PackedImage, row, col int, red int16) {
	res := img.Resolution
	if row < 0 || row >= res.Height || col < 0 || col >= res.Width {
		return
	}
	img.Pixels[row*res.Width+col].Red = red
}
