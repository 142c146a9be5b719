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

package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"io"
)

// Recording accumulates a digest of a recording as it is written. It
// implements io.Writer.
type Recording struct {
	hash hash.Hash
	n    int
}

// NewRecording is the preferred method of initialisation for the Recording
// type.
func NewRecording() *Recording {
	return &Recording{hash: sha1.New()}
}

func (dig *Recording) String() string {
	return hex.EncodeToString(dig.hash.Sum(nil))
}

// Write implements the io.Writer interface.
func (dig *Recording) Write(p []byte) (int, error) {
	n, err := dig.hash.Write(p)
	dig.n += n
	return n, err
}

// Len returns the number of bytes written to the digest.
func (dig *Recording) Len() int {
	return dig.n
}

// ResetDigest resets the digest to its initial state.
func (dig *Recording) ResetDigest() {
	dig.hash.Reset()
	dig.n = 0
}

// Sum returns the digest of a complete recording.
func Sum(data []byte) string {
	d := sha1.Sum(data)
	return hex.EncodeToString(d[:])
}

// Read returns the digest of everything that can be read from r.
func Read(r io.Reader) (string, error) {
	dig := NewRecording()
	if _, err := io.Copy(dig, r); err != nil {
		return "", err
	}
	return dig.String(), nil
}
