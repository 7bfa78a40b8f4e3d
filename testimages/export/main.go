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

// Command export renders the synthetic test images as upscaled PNG
// files for visual inspection.
// Run from the module root directory; output goes to testdata/images/.
package main

import (
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/redeye/testimages"
)

// scale is the upscaling factor; at 8x the 5x5 eye boxes are easy to
// see.
const scale = 8

func main() {
	if err := os.MkdirAll(filepath.Join("testdata", "images"), 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testimages.All)) {
		for _, c := range testimages.All[category] {
			name := category + "_" + c.Name
			if err := export(name, c); err != nil {
				panic(err)
			}
		}
	}
}

func export(name string, c testimages.Case) (err error) {
	src := toRGBA(c)

	dst := image.NewRGBA(image.Rect(0, 0, c.Width*scale, c.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(filepath.Join("testdata", "images", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, dst)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// toRGBA builds the case and shows its red channel, clamped to the
// displayable 0-255 range.
func toRGBA(c testimages.Case) *image.RGBA {
	img := c.Build()
	out := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := range c.Height {
		for x := range c.Width {
			r := int(img.Pixels[y*c.Width+x].Red)
			out.Set(x, y, color.RGBA{R: uint8(max(0, min(255, r))), A: 255})
		}
	}
	return out
}
