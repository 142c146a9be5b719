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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/tapecode/tapecode/basicode"
	"github.com/tapecode/tapecode/logger"
	"github.com/tapecode/tapecode/paths"
	"github.com/tapecode/tapecode/pulse"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the name of the preferences file in the resource
// directory.
const DefaultFilename = "tapecode.yaml"

// tag string used in calls to the logger.
const logTag = "prefs"

// Prefs are the user preferences.
type Prefs struct {
	SampleRate int     `yaml:"sample_rate"`
	Leader     float64 `yaml:"leader"`
	Trailer    float64 `yaml:"trailer"`
	Shape      string  `yaml:"shape"`

	// number of listings encoded concurrently in batch mode
	Workers int `yaml:"workers"`
}

// NewPrefs returns preferences set to their default values.
func NewPrefs() *Prefs {
	p := &Prefs{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Prefs) SetDefaults() {
	opts := basicode.DefaultOptions()
	p.SampleRate = opts.SampleRate
	p.Leader = opts.Leader
	p.Trailer = opts.Trailer
	p.Shape = opts.Shape.String()
	p.Workers = runtime.NumCPU()
}

// DefaultPath returns the path of the preferences file in the resource
// directory.
func DefaultPath() (string, error) {
	return paths.ResourcePath("", DefaultFilename)
}

// Load preferences from the named file. Fields missing from the file keep
// their default values. If the file does not exist the defaults are
// returned without error.
func Load(filename string) (*Prefs, error) {
	p := NewPrefs()

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, logTag, "%s not found, using defaults", filename)
			return p, nil
		}
		return nil, fmt.Errorf("%s: %w", logTag, err)
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", logTag, filename, err)
	}

	if _, err := p.Options(); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", logTag, filename, err)
	}

	logger.Logf(logger.Allow, logTag, "loaded %s", filename)

	return p, nil
}

// Save preferences to the named file.
func (p *Prefs) Save(filename string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", logTag, err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("%s: %w", logTag, err)
	}

	logger.Logf(logger.Allow, logTag, "saved %s", filename)

	return nil
}

// Options returns the encoder options described by the preferences.
func (p *Prefs) Options() (basicode.Options, error) {
	shape, err := pulse.ParseShape(p.Shape)
	if err != nil {
		return basicode.Options{}, err
	}

	opts := basicode.Options{
		SampleRate: p.SampleRate,
		Leader:     p.Leader,
		Trailer:    p.Trailer,
		Shape:      shape,
	}

	if err := opts.Validate(); err != nil {
		return basicode.Options{}, err
	}

	return opts, nil
}

func (p *Prefs) String() string {
	return fmt.Sprintf("rate=%d leader=%.2f trailer=%.2f shape=%s workers=%d",
		p.SampleRate, p.Leader, p.Trailer, p.Shape, p.Workers)
}
