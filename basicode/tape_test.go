// This file is part of Tapecode.
//
// Tapecode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapecode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapecode.  If not, see <https://www.gnu.org/licenses/>.

package basicode_test

import (
	"testing"

	"github.com/tapecode/tapecode/wavbuffer"
)

// the length of the high half of a wave, in samples, above which the wave is
// considered to be a long wave. at 44100Hz the high half of a short wave is
// nine or ten samples long and that of a long wave is eighteen or nineteen.
const longThreshold = 14

// waves returns the sequence of waves in a square wave recording as a slice
// of booleans. true indicates a long wave.
func waves(t *testing.T, wav []byte) []bool {
	t.Helper()

	var w []bool
	var run int
	for _, v := range wav[wavbuffer.HeaderLen:] {
		if v == wavbuffer.High {
			run++
			continue
		}
		if run > 0 {
			w = append(w, run > longThreshold)
			run = 0
		}
	}
	if run > 0 {
		w = append(w, run > longThreshold)
	}
	return w
}

// tape is a minimal reader of the wave sequence produced by waves(). it is
// only as clever as it needs to be to read back a noise-free recording.
type tape struct {
	t     *testing.T
	waves []bool
	idx   int
}

// leader skips short waves and returns how many were skipped.
func (tp *tape) leader() int {
	n := 0
	for tp.idx < len(tp.waves) && !tp.waves[tp.idx] {
		tp.idx++
		n++
	}
	return n
}

func (tp *tape) bit() int {
	tp.t.Helper()
	if tp.idx >= len(tp.waves) {
		tp.t.Fatalf("tape ended unexpectedly")
	}
	if tp.waves[tp.idx] {
		tp.idx++
		return 0
	}
	if tp.idx+1 >= len(tp.waves) || tp.waves[tp.idx+1] {
		tp.t.Fatalf("lone short wave at wave %d", tp.idx)
	}
	tp.idx += 2
	return 1
}

// frame reads one 11 bit frame, reversing the framing of the encoder.
func (tp *tape) frame() byte {
	tp.t.Helper()
	if tp.bit() != 0 {
		tp.t.Fatalf("missing start bit at wave %d", tp.idx)
	}
	var b byte
	for i := 0; i < 8; i++ {
		b |= byte(tp.bit()) << i
	}
	if tp.bit() != 1 || tp.bit() != 1 {
		tp.t.Fatalf("missing stop bits at wave %d", tp.idx)
	}
	return b
}

// block reads frames up to and including the end marker and the checksum that
// follows it.
func (tp *tape) block() []byte {
	tp.t.Helper()
	var data []byte
	for {
		b := tp.frame()
		data = append(data, b)
		if b == 0x83 {
			break
		}
	}
	return append(data, tp.frame())
}
