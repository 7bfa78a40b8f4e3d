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

package redeye

// Pupil classification model:
//
// The 3x3 interior of an eye box holds one of four fixed pupil
// patterns.  Reading the second box row from its first interior pixel
// ("eye" below) is enough to tell them apart, checked in this order,
// first match wins:
//
//	pattern 1          pattern 2          pattern 3          pattern 4
//	* * * * *          * * * * *          * * * * *          * * * * *
//	*       *          *   X   *          *   X   *          * X   X *
//	* X X X *          *   X   *          * X X X *          *   X   *
//	*       *          *   X   *          *   X   *          * X   X *
//	* * * * *          * * * * *          * * * * *          * * * * *
//
// Pattern 1: the whole second row is dark, the pupil is the row
// below.  Patterns 2 and 3 share a dark "eye" pixel with a bright
// right neighbour; pattern 3 is pattern 2 plus the two middle-row
// neighbours.  Pattern 4 is the only one with a bright "eye" pixel.
// An interior matching none of these is reported as absent.

// InnerPixels classifies the pupil inside border b and returns the
// indices of its pixels.  ok is false when the interior matches no
// known pattern, or when the border's box does not lie fully inside
// the image; the eye then has no interior pixels.
func InnerPixels(img Image, b Border) (inner []int, ok bool) {
	w := img.Size().Width

	// Borders from FindBorders are always in bounds, but the box is
	// re-checked here since arbitrary borders can be passed in.
	if w <= 0 || b.NorthWest < 0 || b.NorthWest%w+4 >= w ||
		b.NorthWest+4*w+4 >= img.NumPixels() {
		return nil, false
	}

	// First interior pixel on the second row of the box.
	eye := b.NorthWest + w + 1

	switch {
	case img.RedAt(eye) < redThreshold &&
		img.RedAt(eye+1) < redThreshold &&
		img.RedAt(eye+2) < redThreshold:
		// pattern 1: horizontal bar on the middle row
		return []int{eye + w, eye + w + 1, eye + w + 2}, true

	case img.RedAt(eye) < redThreshold && img.RedAt(eye+1) >= redThreshold:
		// pattern 2: vertical line down the middle column
		inner = []int{eye + 1, eye + w + 1, eye + 2*w + 1}
		if img.RedAt(eye+w) >= redThreshold {
			// pattern 3 extends the line into a plus
			inner = append(inner, eye+w, eye+w+2)
		}
		return inner, true

	case img.RedAt(eye) >= redThreshold:
		// pattern 4: diagonal cross over the full interior
		return []int{eye, eye + 2, eye + w + 1, eye + 2*w, eye + 2*w + 2}, true
	}

	return nil, false
}
