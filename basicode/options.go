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
	"fmt"
	"math"

	"github.com/tapecode/tapecode/pulse"
)

// Wave durations in seconds.
const (
	ShortWave = 1.0 / 2400.0
	LongWave  = 1.0 / 1200.0
)

// FrameBits is the number of bits in a byte frame: one start bit, eight data
// bits and two stop bits.
const FrameBits = 11

// ByteDuration is the time taken to transmit one byte frame. Each bit lasts
// as long as one long wave.
const ByteDuration = FrameBits * LongWave

// Defaults for the Options type.
const (
	DefaultSampleRate = 44100
	DefaultLeader     = 5.0
	DefaultTrailer    = 5.0
)

// Upper limits for the Options type. Both bound the size of the WAV file.
const (
	MaxSampleRate = 192000
	MaxTone       = 60.0
)

// Marker bytes and the bit set on every data byte.
const (
	StartMarker = 0x82
	EndMarker   = 0x83
	MarkBit     = 0x80
)

// Options for an encoding. The zero value is not valid; use DefaultOptions().
type Options struct {
	// sample rate of the WAV file in Hz
	SampleRate int

	// length of the leader and trailer tones in seconds
	Leader  float64
	Trailer float64

	// shape of each wave. pulse.Square is the historic waveform
	Shape pulse.Shape
}

// DefaultOptions returns the options for a standard BASICODE recording.
func DefaultOptions() Options {
	return Options{
		SampleRate: DefaultSampleRate,
		Leader:     DefaultLeader,
		Trailer:    DefaultTrailer,
		Shape:      pulse.Square,
	}
}

// Validate returns an error if the options can not produce a recording.
func (o Options) Validate() error {
	// a short wave must be at least two samples long or the high and low
	// halves of the wave can not both be represented
	if float64(o.SampleRate)*ShortWave < 2 {
		return fmt.Errorf("basicode: sample rate too low (%dHz)", o.SampleRate)
	}
	if o.SampleRate > MaxSampleRate {
		return fmt.Errorf("basicode: sample rate too high (%dHz)", o.SampleRate)
	}
	if err := validTone("leader", o.Leader); err != nil {
		return err
	}
	if err := validTone("trailer", o.Trailer); err != nil {
		return err
	}
	switch o.Shape {
	case pulse.Square, pulse.Sine:
	default:
		return fmt.Errorf("basicode: unsupported wave shape (%v)", o.Shape)
	}
	return nil
}

// validTone checks that d is a finite duration between 0 and MaxTone.
func validTone(name string, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("basicode: invalid %s duration (%v)", name, d)
	}
	if d < 0 {
		return fmt.Errorf("basicode: negative %s duration (%.2fs)", name, d)
	}
	if d > MaxTone {
		return fmt.Errorf("basicode: %s duration too long (%.2fs)", name, d)
	}
	return nil
}

func (o Options) String() string {
	return fmt.Sprintf("%dHz leader=%.2fs trailer=%.2fs %s", o.SampleRate, o.Leader, o.Trailer, o.Shape)
}
