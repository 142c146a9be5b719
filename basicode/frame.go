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

package basicode

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Normalise prepares a listing for transmission. Line endings of either "\r\n"
// or "\n" are converted to "\r", surrounding white space is removed and a
// single "\r" is appended to terminate the final line.
func Normalise(program string) string {
	program = strings.ReplaceAll(program, "\r\n", "\r")
	program = strings.ReplaceAll(program, "\n", "\r")
	return strings.TrimSpace(program) + "\r"
}

// Frame returns the 11 bit frame for a byte. Bit 0 of the result is the start
// bit and is transmitted first.
func Frame(b byte) uint16 {
	return (1 << 10) | (1 << 9) | (uint16(b) << 1)
}

// Duration returns the length in seconds of a recording of a normalised
// listing of textLen bytes. Every byte frame takes the same time to
// transmit whatever its value.
func Duration(textLen int, opts Options) float64 {
	start := ByteDuration
	data := float64(textLen) * ByteDuration
	end := ByteDuration
	checksum := ByteDuration
	return opts.Leader + start + data + end + checksum + opts.Trailer
}

// toneWaves returns the number of short waves in a tone of the given duration.
func toneWaves(duration float64) int {
	return int(math.Floor(duration / ShortWave))
}

// Codes returns the byte transmitted for each character of a normalised
// listing. Bit 7 is set on every code. Characters above U+00FF keep only the
// low eight bits of their code point. Bytes that are not valid UTF-8 are
// taken to be Latin-1 characters.
func Codes(data string) []byte {
	codes := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, sz := utf8.DecodeRuneInString(data)
		if r == utf8.RuneError && sz == 1 {
			r = rune(data[0])
		}
		codes = append(codes, byte(MarkBit|r))
		data = data[sz:]
	}
	return codes
}

// Checksum returns the checksum transmitted after a block of normalised data.
// The start and end markers are included in the checksum along with every
// character code.
func Checksum(data string) byte {
	c := byte(StartMarker)
	for _, b := range Codes(data) {
		c ^= b
	}
	return c ^ EndMarker
}
