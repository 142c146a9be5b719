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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/tapecode/tapecode/basicode"
	"github.com/tapecode/tapecode/batch"
	"github.com/tapecode/tapecode/digest"
	"github.com/tapecode/tapecode/listing"
	"github.com/tapecode/tapecode/logger"
	"github.com/tapecode/tapecode/modalflag"
	"github.com/tapecode/tapecode/prefs"
	"github.com/tapecode/tapecode/soundload"
	"github.com/tapecode/tapecode/statsview"
	"github.com/tapecode/tapecode/version"
	"github.com/tapecode/tapecode/wavwriter"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// launch runs the program with the supplied arguments and returns the value
// to use with os.Exit(). the listing for ENCODE mode is read from stdin if no
// file is named. help messages and reports are written to stdout. errors and
// the echoed log are written to stderr.
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("ENCODE", "BATCH", "INSPECT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "ENCODE":
		err = encode(md, stdin, stderr)

	case "BATCH":
		err = encodeBatch(md, stderr)

	case "INSPECT":
		err = inspect(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// flags shared by the ENCODE and BATCH modes.
type encodingFlags struct {
	config    *string
	rate      *int
	leader    *float64
	trailer   *float64
	shape     *string
	log       *bool
	savePrefs *bool

	// BATCH mode only
	workers *int
}

func addEncodingFlags(md *modalflag.Modes) *encodingFlags {
	def := basicode.DefaultOptions()
	return &encodingFlags{
		config:    md.AddString("config", "", "preferences file (default is in the user's config directory)"),
		rate:      md.AddInt("rate", def.SampleRate, "sample rate of the recording in Hz"),
		leader:    md.AddFloat64("leader", def.Leader, "duration of the leader tone in seconds"),
		trailer:   md.AddFloat64("trailer", def.Trailer, "duration of the trailer tone in seconds"),
		shape:     md.AddString("shape", def.Shape.String(), "wave shape: square, sine"),
		log:       md.AddBool("log", false, "echo debugging log to stderr"),
		savePrefs: md.AddBool("saveprefs", false, "save the effective settings to the preferences file"),
	}
}

// prefs loads the preferences file and applies any flags that have been set
// explicitly on the command line.
func (ef *encodingFlags) prefs(md *modalflag.Modes, stderr io.Writer) (*prefs.Prefs, error) {
	// set debugging log echo
	if *ef.log {
		logger.SetEcho(stderr)
	} else {
		logger.SetEcho(nil)
	}

	fn := *ef.config
	if fn == "" {
		var err error
		fn, err = prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	p, err := prefs.Load(fn)
	if err != nil {
		return nil, err
	}

	md.Visit(func(flag string) {
		switch flag {
		case "rate":
			p.SampleRate = *ef.rate
		case "leader":
			p.Leader = *ef.leader
		case "trailer":
			p.Trailer = *ef.trailer
		case "shape":
			p.Shape = *ef.shape
		case "workers":
			p.Workers = *ef.workers
		}
	})

	// check flag values before saving them
	if _, err := p.Options(); err != nil {
		return nil, err
	}

	if *ef.savePrefs {
		if err := p.Save(fn); err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "tapecode", "preferences: %s", p)

	return p, nil
}

func encode(md *modalflag.Modes, stdin io.Reader, stderr io.Writer) error {
	md.NewMode()

	ef := addEncodingFlags(md)
	out := md.AddString("out", "", fmt.Sprintf("output file (%s for stdout)", wavwriter.Stdout))
	info := md.AddBool("info", false, "describe the recording without creating it")
	md.AdditionalHelp("The listing is read from stdin if no file is named.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var prog string
	var outName string

	switch len(md.RemainingArgs()) {
	case 0:
		prog, err = listing.Read(stdin)
		outName = listing.DefaultWavName
	case 1:
		prog, err = listing.Load(md.GetArg(0))
		outName = listing.WavName(md.GetArg(0))
	default:
		return fmt.Errorf("only one listing can be encoded in %s mode. use BATCH mode for more", md)
	}
	if err != nil {
		return err
	}

	if *out != "" {
		outName = *out
	}

	pr, err := ef.prefs(md, stderr)
	if err != nil {
		return err
	}

	opts, err := pr.Options()
	if err != nil {
		return err
	}

	if *info {
		fmt.Fprintln(md.Output, basicode.Info(prog, opts))
		return nil
	}

	data, err := basicode.EncodeWith(prog, opts)
	if err != nil {
		return err
	}

	aw, err := wavwriter.New(outName)
	if err != nil {
		return err
	}

	return aw.Write(data)
}

func encodeBatch(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()

	ef := addEncodingFlags(md)
	ef.workers = md.AddInt("workers", 0, "number of listings encoded at once (default from preferences)")
	outDir := md.AddString("outdir", "", "directory for the recordings (default is alongside each listing)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "", "write cpu profile to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one listing required for %s mode", md)
	}

	pr, err := ef.prefs(md, stderr)
	if err != nil {
		return err
	}

	opts, err := pr.Options()
	if err != nil {
		return err
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
	}

	if *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := batch.Run(ctx, batch.Jobs(md.RemainingArgs(), *outDir), opts, pr.Workers)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("recording required for %s mode", md)
	case 1:
		pcm, err := soundload.Load(md.GetArg(0))
		if err != nil {
			return err
		}
		fmt.Fprint(md.Output, soundload.Analyse(pcm))

		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		d, err := digest.Read(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "digest: %s\n", d)
	default:
		return fmt.Errorf("only one recording can be inspected at a time")
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(md.Output, r)
		return nil
	}

	fmt.Fprintln(md.Output, version.String())

	return nil
}
