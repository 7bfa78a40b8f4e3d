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

// Package redeye removes the red-eye effect from raster images.
//
// Detection is template-based: an eye is a rigid 5x5 pixel box whose
// border forms a ring of bright red pixels (red channel >= 200)
// enclosing one of four fixed pupil patterns.  Correct scans each
// image for every occurrence of the template and darkens the red
// channel of all matching pixels in place.
//
// The package performs no image I/O; callers supply pixel buffers
// through the Image interface and own them throughout.
package redeye

import "fmt"

// Correct removes the red-eye effect from every image in images.
//
// All images are validated up front; if any has a non-positive width
// or a pixel buffer that does not match its resolution, Correct
// returns an error naming that image without having modified any
// pixels.  Otherwise each image is processed in order: eye borders
// are located, the pupil pattern inside each border is classified,
// and the red channel of every eye pixel is reduced by 150.
//
// The collected indices are not deduplicated, so a pixel shared by
// two overlapping eyes is reduced once per eye.  Red values are not
// clamped and may go negative.  Correct is deliberately not
// idempotent: running it again reduces the (now darkened) eye pixels
// further, to the extent they still match the template.
func Correct(images []Image) error {
	defer StartTimer("Correct").Stop()

	for i, img := range images {
		if err := validate(img); err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}
	}

	for _, img := range images {
		correctImage(img)
	}
	return nil
}

// correctImage runs the full pipeline on one validated image:
// find borders, classify pupils, collect indices, darken.
func correctImage(img Image) {
	w := img.Size().Width

	var eyePixels []int
	for _, b := range FindBorders(img) {
		inner, ok := InnerPixels(img, b)
		if !ok {
			// Unrecognised pupil: the border ring is still
			// corrected, there are just no interior pixels to add.
			inner = nil
		}
		eyePixels = append(eyePixels, EyePixels(w, b, inner)...)
	}

	for _, i := range eyePixels {
		img.SetRedAt(i, img.RedAt(i)-redCorrection)
	}
}
