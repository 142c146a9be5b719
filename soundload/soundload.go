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

package soundload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/tapecode/tapecode/logger"
)

// tag string used in calls to the logger.
const logTag = "soundload"

// PCM is the signal of a recording.
type PCM struct {
	// in seconds
	TotalTime float64

	// in Hz
	SampleRate float64

	// properties of the source file. the Data field contains only the first
	// channel whatever the value of NumChans
	NumChans int
	BitDepth int

	// mono data taken from the first channel of the source file
	Data []float32
}

// Load a recording from the named file. The file type is decided by the
// filename extension.
func Load(filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, fmt.Errorf("%s: %w", logTag, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		logger.Logf(logger.Allow, logTag, "loading %s as wav file", filename)
		return LoadWAV(f)
	case ".mp3":
		logger.Logf(logger.Allow, logTag, "loading %s as mp3 file", filename)
		return LoadMP3(f)
	}

	return PCM{}, fmt.Errorf("%s: unsupported file type (%s)", logTag, filename)
}

// LoadWAV loads a recording from WAV data.
func LoadWAV(r io.ReadSeeker) (PCM, error) {
	p := PCM{}

	dec := wav.NewDecoder(r)
	if dec == nil {
		return p, fmt.Errorf("%s: wav: error decoding", logTag)
	}

	if !dec.IsValidFile() {
		return p, fmt.Errorf("%s: wav: not a valid wav file", logTag)
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, fmt.Errorf("%s: wav: %w", logTag, err)
	}

	p.NumChans = int(dec.NumChans)
	p.BitDepth = int(dec.BitDepth)
	p.SampleRate = float64(dec.SampleRate)
	p.Data = firstChannel(buf.AsFloat32Buffer(), p.NumChans)

	p.TotalTime = float64(len(p.Data)) / p.SampleRate

	p.log()

	return p, nil
}

// LoadMP3 loads a recording from MP3 data.
func LoadMP3(r io.Reader) (PCM, error) {
	p := PCM{}

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return p, fmt.Errorf("%s: mp3: %w", logTag, err)
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes."
	p.NumChans = 2
	p.BitDepth = 16
	p.SampleRate = float64(dec.SampleRate())

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return p, fmt.Errorf("%s: mp3: %w", logTag, err)
		}

		// left channel only. four bytes per sample frame
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.Data = append(p.Data, float32(v)/32768.0)
		}

		if err != nil {
			break
		}
	}

	p.TotalTime = float64(len(p.Data)) / p.SampleRate

	p.log()

	return p, nil
}

// firstChannel returns the samples of the first channel in an interleaved
// buffer.
func firstChannel(buf *audio.Float32Buffer, numChans int) []float32 {
	data := make([]float32, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		data = append(data, buf.Data[i])
	}
	return data
}

func (p PCM) log() {
	logger.Logf(logger.Allow, logTag, "sample rate: %0.2fHz", p.SampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.TotalTime)
}
