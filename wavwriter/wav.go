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

// Package wavwriter writes an encoded recording to disk as a WAV file. The
// recording is already a complete WAV file in memory so no conversion takes
// place.
package wavwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/tapecode/tapecode/logger"
)

// Stdout is the filename that directs output to os.Stdout.
const Stdout = "-"

// WavWriter writes recordings to a named file.
type WavWriter struct {
	filename string

	// used when filename is Stdout
	stdout io.Writer
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	return &WavWriter{
		filename: filename,
		stdout:   os.Stdout,
	}, nil
}

// Filename returns the name of the file that will be written.
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// Write the WAV data to the file, replacing any existing file.
func (aw *WavWriter) Write(data []byte) (rerr error) {
	if aw.filename == Stdout {
		if _, err := aw.stdout.Write(data); err != nil {
			return fmt.Errorf("wavwriter: %w", err)
		}
		return nil
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
