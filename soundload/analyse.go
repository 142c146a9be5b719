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
	"strings"
)

// length of the windows at the start and end of a recording that are
// measured by Analyse(), in seconds.
const toneWindow = 1.0

// Report is the result of Analyse().
type Report struct {
	SampleRate float64
	NumChans   int
	BitDepth   int
	TotalTime  float64

	// frequency of the tone in the opening and closing windows of the
	// recording, in Hz
	Leader  float64
	Trailer float64

	// difference between the largest and smallest sample values
	PeakToPeak float64
}

func (r Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("sample rate: %.0fHz\n", r.SampleRate))
	s.WriteString(fmt.Sprintf("channels: %d\n", r.NumChans))
	s.WriteString(fmt.Sprintf("bit depth: %d\n", r.BitDepth))
	s.WriteString(fmt.Sprintf("total time: %.02fs\n", r.TotalTime))
	s.WriteString(fmt.Sprintf("leader tone: %.0fHz\n", r.Leader))
	s.WriteString(fmt.Sprintf("trailer tone: %.0fHz\n", r.Trailer))
	s.WriteString(fmt.Sprintf("peak to peak: %.3f\n", r.PeakToPeak))
	return s.String()
}

// Analyse a recording.
func Analyse(p PCM) Report {
	r := Report{
		SampleRate: p.SampleRate,
		NumChans:   p.NumChans,
		BitDepth:   p.BitDepth,
		TotalTime:  p.TotalTime,
	}

	if len(p.Data) == 0 || p.SampleRate <= 0 {
		return r
	}

	lo, hi := p.Data[0], p.Data[0]
	for _, v := range p.Data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	r.PeakToPeak = float64(hi - lo)

	n := min(int(toneWindow*p.SampleRate), len(p.Data))
	r.Leader = frequency(p.Data[:n], p.SampleRate)
	r.Trailer = frequency(p.Data[len(p.Data)-n:], p.SampleRate)

	return r
}

// frequency estimates the frequency of the tone in data by counting the
// number of times the signal crosses its mean value.
func frequency(data []float32, sampleRate float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	mean := float32(sum / float64(len(data)))

	var crossings int
	above := data[0] > mean
	for _, v := range data[1:] {
		if v == mean {
			continue
		}
		if (v > mean) != above {
			crossings++
			above = !above
		}
	}

	// two crossings per cycle
	return float64(crossings) / 2.0 / (float64(len(data)) / sampleRate)
}
