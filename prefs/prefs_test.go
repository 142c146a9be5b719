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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tapecode/tapecode/basicode"
	"github.com/tapecode/tapecode/prefs"
	"github.com/tapecode/tapecode/pulse"
	"github.com/tapecode/tapecode/test"
)

func TestDefaults(t *testing.T) {
	p := prefs.NewPrefs()
	opts, err := p.Options()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts, basicode.DefaultOptions())
	test.ExpectSuccess(t, p.Workers > 0)
}

func TestMissingFile(t *testing.T) {
	p, err := prefs.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, basicode.DefaultSampleRate)
	test.ExpectEquality(t, p.Shape, "square")
}

func TestPartialFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tapecode.yaml")
	err := os.WriteFile(fn, []byte("sample_rate: 48000\nshape: sine\n"), 0600)
	test.DemandSuccess(t, err)

	p, err := prefs.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 48000)
	test.ExpectEquality(t, p.Leader, basicode.DefaultLeader)

	opts, err := p.Options()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.Shape, pulse.Sine)
	test.ExpectEquality(t, opts.Trailer, basicode.DefaultTrailer)
}

func TestInvalidFile(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(fn, []byte("sample_rate: [1, 2]\n"), 0600)
	test.DemandSuccess(t, err)
	_, err = prefs.Load(fn)
	test.ExpectFailure(t, err)

	fn = filepath.Join(dir, "shape.yaml")
	err = os.WriteFile(fn, []byte("shape: triangle\n"), 0600)
	test.DemandSuccess(t, err)
	_, err = prefs.Load(fn)
	test.ExpectFailure(t, err)

	for i, v := range []string{".nan", ".inf", "-.inf", "1e9"} {
		fn = filepath.Join(dir, "leader.yaml")
		err = os.WriteFile(fn, []byte("leader: "+v+"\n"), 0600)
		test.DemandSuccess(t, err)
		_, err = prefs.Load(fn)
		test.ExpectFailure(t, err, i)
	}

	fn = filepath.Join(dir, "rate.yaml")
	err = os.WriteFile(fn, []byte("sample_rate: 1000\n"), 0600)
	test.DemandSuccess(t, err)
	_, err = prefs.Load(fn)
	test.ExpectFailure(t, err)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tapecode.yaml")

	p := prefs.NewPrefs()
	p.Leader = 2.5
	p.Workers = 3
	test.DemandSuccess(t, p.Save(fn))

	q, err := prefs.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *q, *p)
}
