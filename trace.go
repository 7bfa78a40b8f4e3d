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

import (
	"fmt"
	"io"
	"os"
	"time"
)

// TraceOutput receives timing reports from Timer.  It defaults to
// standard error and can be replaced, for example with io.Discard to
// silence timing output in tests.
var TraceOutput io.Writer = os.Stderr

// Timer measures the wall-clock duration of one operation.  It is
// purely observational and never influences results.
type Timer struct {
	name  string
	start time.Time
}

// StartTimer begins timing the named operation.
func StartTimer(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop ends the measurement and writes a one-line report to
// TraceOutput.
func (t *Timer) Stop() {
	elapsed := time.Since(t.start).Seconds()
	fmt.Fprintf(TraceOutput, "%s: %f seconds\n", t.name, elapsed)
}
