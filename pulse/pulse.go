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

package pulse

import (
	"fmt"
	"math"
	"strings"

	"github.com/tapecode/tapecode/wavbuffer"
)

// Shape of the wave drawn for each pulse.
type Shape int

// List of valid Shape values.
const (
	// first half of the pulse window is high, second half is low.
	Square Shape = iota

	// one cycle of a sine wave, positive half first.
	Sine
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Sine:
		return "sine"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape returns the Shape named by s. Case insensitive.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "":
		return Square, nil
	case "sine":
		return Sine, nil
	}
	return Square, fmt.Errorf("pulse: unrecognised shape (%s)", s)
}

// number of samples added to the buffer to account for floating point
// imprecision over the length of the signal.
const slackSamples = 5

// NumSamples returns the number of samples required for a signal of the
// specified duration in seconds.
func NumSamples(sampleRate int, totalDuration float64) int {
	return int(math.Ceil(totalDuration*float64(sampleRate))) + slackSamples
}

// Synth writes waves into a wavbuffer.Buffer.
type Synth struct {
	buf   *wavbuffer.Buffer
	shape Shape

	samplePeriod float64

	// the amount of time by which the previous wave overran. always less than
	// one sample period once a wave has been completed
	excessTime float64
}

// NewSynth is the preferred method of initialisation for the Synth type. The
// totalDuration argument is the length in seconds of all waves that will be
// added and is used to size the underlying buffer.
func NewSynth(sampleRate int, totalDuration float64, shape Shape) (*Synth, error) {
	if totalDuration < 0 {
		return nil, fmt.Errorf("pulse: invalid duration (%f)", totalDuration)
	}

	buf, err := wavbuffer.New(sampleRate, NumSamples(sampleRate, totalDuration))
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}

	return &Synth{
		buf:          buf,
		shape:        shape,
		samplePeriod: 1.0 / float64(sampleRate),
	}, nil
}

// AddWave adds a single wave of the given duration in seconds.
func (s *Synth) AddWave(duration float64) error {
	d := s.excessTime
	for d < duration {
		if err := s.buf.AddSample(s.level(d / duration)); err != nil {
			return fmt.Errorf("pulse: %w", err)
		}
		d += s.samplePeriod
	}
	s.excessTime = d - duration
	return nil
}

// level returns the sample value at a position (from 0.0 to 1.0) through the
// wave.
func (s *Synth) level(pos float64) int {
	switch s.shape {
	case Sine:
		return int(math.Floor((1.0 + math.Sin(2.0*math.Pi*pos)) * 0.5 * 255.99))
	default:
		if pos < 0.5 {
			return wavbuffer.High
		}
		return wavbuffer.Low
	}
}

// AddRepeatedWaves adds count waves of the given duration.
func (s *Synth) AddRepeatedWaves(duration float64, count int) error {
	for i := 0; i < count; i++ {
		if err := s.AddWave(duration); err != nil {
			return err
		}
	}
	return nil
}

// ExcessTime returns the time by which the most recent wave overran its
// duration. The value will be consumed by the next call to AddWave().
func (s *Synth) ExcessTime() float64 {
	return s.excessTime
}

// Written returns the number of samples written so far.
func (s *Synth) Written() int {
	return s.buf.Written()
}

// NumSamples returns the sample capacity of the underlying buffer.
func (s *Synth) NumSamples() int {
	return s.buf.NumSamples()
}

// Finalise completes the underlying buffer and returns the WAV file.
func (s *Synth) Finalise() []byte {
	return s.buf.Finalise()
}
