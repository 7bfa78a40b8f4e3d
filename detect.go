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

// Border gives the four corner indices of one detected eye box in a
// flat, row-major pixel buffer.  The box is always exactly 5 pixels
// wide and 5 rows tall: NorthEast = NorthWest+4, and the south
// corners sit four rows below the north ones.
//
//	NW > * * * * * < NE
//	     *       *
//	     *       *
//	     *       *
//	SW > * * * * * < SE
type Border struct {
	NorthWest int
	NorthEast int
	SouthWest int
	SouthEast int
}

// FindBorders scans img in a single forward pass and returns the
// bounding boxes of all eye patterns, in the order discovered.
//
// An eye announces itself by a "dash" of three horizontally adjacent
// pixels with red >= 200, repeated four rows further down in the same
// columns.  When such a pair is found, the side dashes are checked by
// resolveCorners; candidates without both sides are discarded and the
// scan continues.  A border is only reported when its whole 5x5 box
// lies inside the image.
func FindBorders(img Image) []Border {
	w := img.Size().Width
	n := img.NumPixels()

	var borders []Border

	// Sliding window over the red values of the three most recently
	// visited pixels: r2 is the current pixel, r0 the oldest.
	var r0, r1, r2 int16
	for idp := range n {
		r0, r1, r2 = r1, r2, img.RedAt(idp)
		if idp < 2 || r0 < redThreshold || r1 < redThreshold || r2 < redThreshold {
			continue
		}

		// idp is the last pixel of a top dash.  The bottom dash sits
		// four rows below; if that row is past the buffer, no box
		// fits anywhere in the remaining pixels.
		if idp+4*w >= n {
			break
		}
		if img.RedAt(idp-2+4*w) < redThreshold ||
			img.RedAt(idp-1+4*w) < redThreshold ||
			img.RedAt(idp+4*w) < redThreshold {
			continue
		}

		if b, ok := resolveCorners(img, idp); ok {
			borders = append(borders, b)
		}
	}
	return borders
}

// resolveCorners checks whether a confirmed top/bottom dash pair is
// flanked by vertical dashes on both sides.  idp is the index of the
// last pixel of the top dash; the caller has already verified that
// the bottom row of the box is within the buffer.
//
// The left side sits three columns before idp, the right side one
// column after, so the box spans columns idp%w-3 through idp%w+1.
// Candidates whose box would run off the left or right image edge
// (and therefore wrap across rows in the flat buffer) are rejected.
func resolveCorners(img Image, idp int) (Border, bool) {
	w := img.Size().Width

	col := idp % w
	if col < 3 || col+1 >= w {
		return Border{}, false
	}

	if img.RedAt(idp+1+1*w) < redThreshold ||
		img.RedAt(idp+1+2*w) < redThreshold ||
		img.RedAt(idp+1+3*w) < redThreshold {
		return Border{}, false
	}
	if img.RedAt(idp-3+1*w) < redThreshold ||
		img.RedAt(idp-3+2*w) < redThreshold ||
		img.RedAt(idp-3+3*w) < redThreshold {
		return Border{}, false
	}

	return Border{
		NorthWest: idp - 3,
		NorthEast: idp + 1,
		SouthWest: idp - 3 + 4*w,
		SouthEast: idp + 1 + 4*w,
	}, true
}

// Detection and correction parameters.  The eye template is rigid;
// none of these are tunable without changing the pattern definitions
// in inner.go as well.
const (
	// redThreshold is the minimum red value for a pixel to count as
	// part of an eye's structure.
	redThreshold = 200

	// redCorrection is subtracted from the red channel of every
	// collected eye pixel.  Values are not clamped afterwards.
	redCorrection = 150

	// eyeSize is the width and height of the eye bounding box in
	// pixels.  The offsets in this file and in inner.go are spelled
	// out in terms of the box geometry rather than this constant;
	// it exists for capacity calculations and documentation.
	eyeSize = 5
)
