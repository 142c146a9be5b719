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

package listing_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tapecode/tapecode/listing"
	"github.com/tapecode/tapecode/test"
)

func TestRead(t *testing.T) {
	s, err := listing.Read(strings.NewReader("10 PRINT \"HI\"\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10 PRINT \"HI\"\n")

	_, err = listing.Read(strings.NewReader(""))
	test.ExpectSuccess(t, errors.Is(err, listing.ErrBlank))

	_, err = listing.Read(strings.NewReader(" \r\n\t\n"))
	test.ExpectSuccess(t, errors.Is(err, listing.ErrBlank))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "hello.bas")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("10 PRINT \"HELLO\""), 0600))
	s, err := listing.Load(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10 PRINT \"HELLO\"")

	fn = filepath.Join(dir, "blank.bas")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("\n\n"), 0600))
	_, err = listing.Load(fn)
	test.ExpectSuccess(t, errors.Is(err, listing.ErrBlank))

	_, err = listing.Load(filepath.Join(dir, "missing.bas"))
	test.ExpectFailure(t, err)
}

func TestWavName(t *testing.T) {
	test.ExpectEquality(t, listing.WavName("prog.bas"), "prog.wav")
	test.ExpectEquality(t, listing.WavName("dir/demo.bc3"), "dir/demo.wav")
	test.ExpectEquality(t, listing.WavName("noext"), "noext.wav")
	test.ExpectEquality(t, listing.WavName(""), listing.DefaultWavName)
	test.ExpectEquality(t, listing.WavName("-"), listing.DefaultWavName)
}
