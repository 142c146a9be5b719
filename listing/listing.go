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

// Package listing reads BASIC program listings for encoding. It is the
// caller-side gatekeeper for the encoder: a blank listing is rejected here so
// that the encoder itself never has to consider one.
package listing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrBlank is returned for listings that are empty or contain only white
// space.
var ErrBlank = errors.New("listing is blank")

// DefaultWavName is the name of the WAV file when the listing has no name of
// its own, for example when it is read from stdin.
const DefaultWavName = "basicode.wav"

// MIMEType of the encoded recording.
const MIMEType = "audio/wav"

// Read a listing from an io.Reader.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("listing: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("listing: %w", ErrBlank)
	}
	return string(b), nil
}

// Load a listing from the named file.
func Load(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("listing: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("%w (%s)", err, filename)
	}
	return s, nil
}

// WavName returns the name of the WAV file for the listing in the named file.
// The extension of the listing file is replaced with ".wav". An empty
// filename or "-" (stdin) results in DefaultWavName.
func WavName(filename string) string {
	if filename == "" || filename == "-" {
		return DefaultWavName
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".wav"
}
