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

// EyePixels enumerates every pixel index belonging to one eye: the
// given interior pixels plus the full border ring.  The result is a
// flat list, not a set; when two eyes overlap, shared indices appear
// once per eye and are corrected once per occurrence.
func EyePixels(w int, b Border, inner []int) []int {
	// ring: two full rows of eyeSize plus three pixels per side column
	eye := make([]int, 0, len(inner)+2*eyeSize+6)

	eye = append(eye, inner...)

	// top row
	for i := b.NorthWest; i <= b.NorthEast; i++ {
		eye = append(eye, i)
	}

	// side columns, rows 1-3
	eye = append(eye,
		b.NorthWest+1*w, b.NorthWest+2*w, b.NorthWest+3*w,
		b.NorthEast+1*w, b.NorthEast+2*w, b.NorthEast+3*w)

	// bottom row
	for i := b.SouthWest; i <= b.SouthEast; i++ {
		eye = append(eye, i)
	}

	return eye
}
