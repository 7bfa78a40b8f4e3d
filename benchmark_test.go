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

package redeye_test

import (
	"fmt"
	"slices"
	"testing"

	"seehuhn.de/go/redeye"
	"seehuhn.de/go/redeye/testimages"
)

// eyeGrid builds a size x size image with eyes on a 16 pixel grid,
// cycling through the four pupil patterns.
func eyeGrid(size int) *redeye.PackedImage {
	c := testimages.Case{Width: size, Height: size}
	k := 0
	for row := 2; row+5 <= size; row += 16 {
		for col := 2; col+5 <= size; col += 16 {
			c.Eyes = append(c.Eyes, testimages.Eye{
				Row:     row,
				Col:     col,
				Pattern: testimages.Pattern(k % 4),
			})
			k++
		}
	}
	return c.Build()
}

// BenchmarkFindBorders measures the detection scan alone.
func BenchmarkFindBorders(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := eyeGrid(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if n := len(redeye.FindBorders(img)); n == 0 {
					b.Fatal("no borders found")
				}
			}
		})
	}
}

// BenchmarkCorrect measures the full pipeline.  Correction darkens
// the eyes below the detection threshold, so the pristine buffer is
// restored before each iteration.
func BenchmarkCorrect(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := eyeGrid(size)
			pristine := slices.Clone(img.Pixels)
			batch := []redeye.Image{img}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				copy(img.Pixels, pristine)
				if err := redeye.Correct(batch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
