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

import "fmt"

// Resolution gives the size of an image in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Pixel is a single RGBA sample.  Channels are int16 rather than
// uint8 because correction subtracts from the red channel without
// clamping; the usual 0-255 value range is the producer's contract,
// not enforced here.
type Pixel struct {
	Red, Green, Blue, Alpha int16
}

// Image is the view of an image the red-eye pipeline needs: its
// resolution and mutable, indexed access to the red channel.  Pixels
// are stored row-major, so a pixel at (row, col) has index
// row*Width + col.  The buffer must hold exactly Width*Height pixels;
// Correct rejects images where this does not hold.
//
// The pipeline never copies or retains the image; all mutation
// happens in place on the caller's buffer.
type Image interface {
	Size() Resolution
	NumPixels() int
	RedAt(i int) int16
	SetRedAt(i int, v int16)
}

// PackedImage stores all four channels interleaved, one Pixel per
// buffer entry.
type PackedImage struct {
	Resolution Resolution
	Pixels     []Pixel
}

// NewPackedImage allocates a zero-filled packed image of the given size.
func NewPackedImage(width, height int) *PackedImage {
	return &PackedImage{
		Resolution: Resolution{Width: width, Height: height},
		Pixels:     make([]Pixel, width*height),
	}
}

// Size returns the image resolution.
func (img *PackedImage) Size() Resolution { return img.Resolution }

// NumPixels returns the length of the pixel buffer.
func (img *PackedImage) NumPixels() int { return len(img.Pixels) }

// RedAt returns the red channel of pixel i.
func (img *PackedImage) RedAt(i int) int16 { return img.Pixels[i].Red }

// SetRedAt sets the red channel of pixel i.
func (img *PackedImage) SetRedAt(i int, v int16) { img.Pixels[i].Red = v }

// StrideImage stores each channel in its own plane.  All four planes
// have the same length, Width*Height.
type StrideImage struct {
	Resolution Resolution
	Red        []int16
	Green      []int16
	Blue       []int16
	Alpha      []int16
}

// NewStrideImage allocates a zero-filled stride image of the given size.
func NewStrideImage(width, height int) *StrideImage {
	n := width * height
	return &StrideImage{
		Resolution: Resolution{Width: width, Height: height},
		Red:        make([]int16, n),
		Green:      make([]int16, n),
		Blue:       make([]int16, n),
		Alpha:      make([]int16, n),
	}
}

// Size returns the image resolution.
func (img *StrideImage) Size() Resolution { return img.Resolution }

// NumPixels returns the length of the red plane.
func (img *StrideImage) NumPixels() int { return len(img.Red) }

// RedAt returns the red channel of pixel i.
func (img *StrideImage) RedAt(i int) int16 { return img.Red[i] }

// SetRedAt sets the red channel of pixel i.
func (img *StrideImage) SetRedAt(i int, v int16) { img.Red[i] = v }

// validate reports malformed image geometry as an error, so that the
// scan's index arithmetic can rely on the buffer matching the
// declared resolution.
func validate(img Image) error {
	res := img.Size()
	if res.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", res.Width)
	}
	if res.Height < 0 {
		return fmt.Errorf("height must be non-negative, got %d", res.Height)
	}
	if n := img.NumPixels(); n != res.Width*res.Height {
		return fmt.Errorf("resolution %dx%d implies %d pixels, buffer has %d",
			res.Width, res.Height, res.Width*res.Height, n)
	}
	return nil
}
