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

package wavbuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderLen is the number of bytes in the RIFF/WAVE header that precedes the
// sample data.
const HeaderLen = 44

// Sample levels for unsigned 8-bit PCM.
const (
	Low     = 0
	Silence = 127
	High    = 255
)

// Sentinel errors returned by AddSample(). Both indicate a defect in the
// sizing of the buffer rather than a problem with the program being encoded.
var (
	ErrSampleRange = errors.New("sample out of range")
	ErrOverrun     = errors.New("buffer overrun")
)

// Buffer is a fixed length WAV file under construction.
type Buffer struct {
	sampleRate int
	numSamples int

	data []byte

	// index into data of the next byte to be written. the header is written
	// on creation so cursor is never less than HeaderLen
	cursor int
}

// New is the preferred method of initialisation for the Buffer type.
func New(sampleRate int, numSamples int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavbuffer: invalid sample rate (%d)", sampleRate)
	}
	if numSamples < 0 {
		return nil, fmt.Errorf("wavbuffer: invalid number of samples (%d)", numSamples)
	}

	b := &Buffer{
		sampleRate: sampleRate,
		numSamples: numSamples,
		data:       make([]byte, numSamples+HeaderLen),
	}
	b.writeHeader()

	return b, nil
}

// the RIFF chunk size is numSamples+28. this is eight bytes short of the
// canonical 36+numSamples but it is the value historically written by
// BASICODE tape tools and decoders accept it.
func (b *Buffer) writeHeader() {
	h := b.data[:HeaderLen]

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(b.numSamples+28))
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1) // linear PCM
	binary.LittleEndian.PutUint16(h[22:24], 1) // mono
	binary.LittleEndian.PutUint32(h[24:28], uint32(b.sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(b.sampleRate)) // byte rate
	binary.LittleEndian.PutUint16(h[32:34], 1)                     // block align
	binary.LittleEndian.PutUint16(h[34:36], 8)                     // bits per sample

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(b.numSamples))

	b.cursor = HeaderLen
}

// AddSample writes one sample value to the buffer and advances the cursor.
func (b *Buffer) AddSample(v int) error {
	if v < Low || v > High {
		return fmt.Errorf("wavbuffer: %w (%d)", ErrSampleRange, v)
	}
	if b.cursor >= len(b.data) {
		return fmt.Errorf("wavbuffer: %w (capacity %d samples)", ErrOverrun, b.numSamples)
	}
	b.data[b.cursor] = byte(v)
	b.cursor++
	return nil
}

// Finalise pads the unwritten part of the buffer with the silence level and
// returns the complete WAV file. It is safe to call more than once.
func (b *Buffer) Finalise() []byte {
	for ; b.cursor < len(b.data); b.cursor++ {
		b.data[b.cursor] = Silence
	}
	return b.data
}

// Len returns the length of the WAV file in bytes, including the header.
func (b *Buffer) Len() int {
	return len(b.data)
}

// NumSamples returns the sample capacity of the buffer.
func (b *Buffer) NumSamples() int {
	return b.numSamples
}

// Written returns the number of samples written so far. The value includes
// silence written by Finalise().
func (b *Buffer) Written() int {
	return b.cursor - HeaderLen
}

// SampleRate returns the sample rate written into the header.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}
