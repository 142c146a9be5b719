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

package soundload_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tapecode/tapecode/basicode"
	"github.com/tapecode/tapecode/soundload"
	"github.com/tapecode/tapecode/test"
	"github.com/tapecode/tapecode/wavbuffer"
)

func TestLoadWAV(t *testing.T) {
	wav, err := basicode.Encode("10 PRINT \"HELLO\"")
	test.DemandSuccess(t, err)

	p, err := soundload.LoadWAV(bytes.NewReader(wav))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 44100.0)
	test.ExpectEquality(t, p.NumChans, 1)
	test.ExpectEquality(t, p.BitDepth, 8)
	test.ExpectEquality(t, len(p.Data), len(wav)-wavbuffer.HeaderLen)

	r := soundload.Analyse(p)
	test.ExpectApproximate(t, r.Leader, 2400.0, 0.05)
	test.ExpectApproximate(t, r.Trailer, 2400.0, 0.05)
	test.ExpectApproximate(t, r.TotalTime, p.TotalTime, 0.0001)
	test.ExpectSuccess(t, r.PeakToPeak > 0)
}

func TestLoadFile(t *testing.T) {
	opts := basicode.DefaultOptions()
	opts.SampleRate = 22050
	wav, err := basicode.EncodeWith("10 REM", opts)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "rem.wav")
	test.DemandSuccess(t, os.WriteFile(fn, wav, 0o644))

	p, err := soundload.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 22050.0)

	r := soundload.Analyse(p)
	test.ExpectApproximate(t, r.Leader, 2400.0, 0.05)
}

// silentMP3 returns n MPEG-1 layer III frames (128kbps, 44100Hz, stereo). the
// side information and main data of each frame are zero so the frames decode
// to silence.
func silentMP3(n int) []byte {
	const frameSize = 144 * 128000 / 44100
	header := []byte{0xff, 0xfb, 0x90, 0x00}

	var data []byte
	for range n {
		f := make([]byte, frameSize)
		copy(f, header)
		data = append(data, f...)
	}
	return data
}

// number of samples per channel in a layer III frame
const mp3FrameSamples = 1152

func TestLoadMP3(t *testing.T) {
	const numFrames = 8

	p, err := soundload.LoadMP3(bytes.NewReader(silentMP3(numFrames)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 44100.0)
	test.ExpectEquality(t, p.NumChans, 2)
	test.ExpectEquality(t, p.BitDepth, 16)

	// one sample per stereo pair, a whole number of frames
	test.DemandSuccess(t, len(p.Data) > 0)
	test.ExpectSuccess(t, len(p.Data) <= numFrames*mp3FrameSamples)
	test.ExpectEquality(t, len(p.Data)%mp3FrameSamples, 0)
	test.ExpectApproximate(t, p.TotalTime, float64(len(p.Data))/44100.0, 0.0001)

	for i, v := range p.Data {
		if !test.ExpectEquality(t, v, 0.0, i) {
			break
		}
	}

	r := soundload.Analyse(p)
	test.ExpectEquality(t, r.Leader, 0.0)
	test.ExpectEquality(t, r.PeakToPeak, 0.0)
}

func TestLoadMP3File(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silence.MP3")
	test.DemandSuccess(t, os.WriteFile(fn, silentMP3(4), 0o644))

	p, err := soundload.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 44100.0)
	test.ExpectSuccess(t, len(p.Data) > 0)
}

func TestNotMP3(t *testing.T) {
	_, err := soundload.LoadMP3(bytes.NewReader([]byte("not an mp3 file at all")))
	test.ExpectFailure(t, err)

	_, err = soundload.LoadMP3(bytes.NewReader(nil))
	test.ExpectFailure(t, err)
}

func TestUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.bas")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("10 REM"), 0o644))

	_, err := soundload.Load(fn)
	test.ExpectFailure(t, err)

	_, err = soundload.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestNotWAV(t *testing.T) {
	_, err := soundload.LoadWAV(bytes.NewReader([]byte("not a wav file at all")))
	test.ExpectFailure(t, err)
}

func TestAnalyseEmpty(t *testing.T) {
	r := soundload.Analyse(soundload.PCM{})
	test.ExpectEquality(t, r.Leader, 0.0)
	test.ExpectEquality(t, r.Trailer, 0.0)
}
