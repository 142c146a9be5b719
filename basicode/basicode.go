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

	"github.com/tapecode/tapecode/logger"
	"github.com/tapecode/tapecode/pulse"
	"github.com/tapecode/tapecode/wavbuffer"
)

// tag string used in calls to the logger.
const logTag = "basicode"

// encoder holds the state for a single encoding. an encoder is used once and
// then discarded.
type encoder struct {
	synth    *pulse.Synth
	checksum byte
}

// transmit a single byte frame. the byte is included in the checksum unless
// it is the checksum itself.
func (enc *encoder) transmit(b byte, isChecksum bool) error {
	if !isChecksum {
		enc.checksum ^= b
	}

	f := Frame(b)
	for i := 0; i < FrameBits; i++ {
		if f&0x01 == 0x01 {
			if err := enc.synth.AddWave(ShortWave); err != nil {
				return err
			}
			if err := enc.synth.AddWave(ShortWave); err != nil {
				return err
			}
		} else {
			if err := enc.synth.AddWave(LongWave); err != nil {
				return err
			}
		}
		f >>= 1
	}

	return nil
}

// block transmits the character codes between the start and end markers,
// followed by the checksum.
func (enc *encoder) block(codes []byte) error {
	if err := enc.transmit(StartMarker, false); err != nil {
		return err
	}
	for _, b := range codes {
		if err := enc.transmit(b, false); err != nil {
			return err
		}
	}
	if err := enc.transmit(EndMarker, false); err != nil {
		return err
	}
	return enc.transmit(enc.checksum, true)
}

// Encode a program listing as a BASICODE recording using the default
// options. The listing should not be empty; rejecting blank listings is the
// responsibility of the caller.
func Encode(program string) ([]byte, error) {
	return EncodeWith(program, DefaultOptions())
}

// EncodeWith encodes a program listing using the specified options.
//
// An error is only returned for invalid options or for an internal sizing
// fault in the WAV buffer. The latter can not happen for valid options.
func EncodeWith(program string, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	codes := Codes(Normalise(program))

	synth, err := pulse.NewSynth(opts.SampleRate, Duration(len(codes), opts), opts.Shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", logTag, err)
	}

	enc := &encoder{synth: synth}

	if err := synth.AddRepeatedWaves(ShortWave, toneWaves(opts.Leader)); err != nil {
		return nil, fmt.Errorf("%s: leader: %w", logTag, err)
	}
	if err := enc.block(codes); err != nil {
		return nil, fmt.Errorf("%s: data: %w", logTag, err)
	}
	if err := synth.AddRepeatedWaves(ShortWave, toneWaves(opts.Trailer)); err != nil {
		return nil, fmt.Errorf("%s: trailer: %w", logTag, err)
	}

	logger.Logf(logger.Allow, logTag, "encoded %d characters (checksum %#02x) as %d of %d samples", len(codes), enc.checksum, synth.Written(), synth.NumSamples())

	return synth.Finalise(), nil
}

// Summary describes the recording that would be produced for a listing.
type Summary struct {
	// length of the normalised listing in characters, including the final
	// carriage return
	TextLen int

	// duration of the recording in seconds
	Duration float64

	// number of samples in the WAV file
	NumSamples int

	// length of the WAV file in bytes
	Size int

	// the checksum byte that will be transmitted
	Checksum byte
}

func (s Summary) String() string {
	return fmt.Sprintf("%d characters, %.2fs, %d samples, checksum %#02x", s.TextLen, s.Duration, s.NumSamples, s.Checksum)
}

// Info returns a Summary of the recording for a program listing without
// encoding it.
func Info(program string, opts Options) Summary {
	prog := Normalise(program)
	s := Summary{
		TextLen:  len(Codes(prog)),
		Checksum: Checksum(prog),
	}
	s.Duration = Duration(s.TextLen, opts)
	s.NumSamples = pulse.NumSamples(opts.SampleRate, s.Duration)
	s.Size = s.NumSamples + wavbuffer.HeaderLen
	return s
}
