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

// Package batch encodes many listings concurrently. Each listing is written
// to its own WAV file. The number of listings being encoded at any one time
// is limited by the workers argument to Run().
//
// The first error encountered stops the batch. Jobs that have not yet
// started are not run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tapecode/tapecode/basicode"
	"github.com/tapecode/tapecode/digest"
	"github.com/tapecode/tapecode/listing"
	"github.com/tapecode/tapecode/logger"
	"github.com/tapecode/tapecode/wavwriter"
	"golang.org/x/sync/errgroup"
)

// tag string used in calls to the logger.
const logTag = "batch"

// ErrDuplicateOutput is returned by Run() when more than one job would write
// to the same file.
var ErrDuplicateOutput = errors.New("more than one listing writes to the same file")

// Job is a single listing to be encoded.
type Job struct {
	Listing string
	Output  string
}

// Jobs creates a Job for each listing. The output filename is derived from
// the listing filename. If outDir is not empty the output is placed in that
// directory, otherwise it is placed alongside the listing.
func Jobs(listings []string, outDir string) []Job {
	jobs := make([]Job, 0, len(listings))
	for _, l := range listings {
		out := listing.WavName(l)
		if outDir != "" {
			out = filepath.Join(outDir, filepath.Base(out))
		}
		jobs = append(jobs, Job{Listing: l, Output: out})
	}
	return jobs
}

// Result of a completed Job.
type Result struct {
	Job

	// number of samples in the recording
	Samples int

	// duration of the recording in seconds
	Duration float64

	// size of the WAV file in bytes
	Size int

	// digest of the WAV file
	Digest string
}

func (r Result) String() string {
	return fmt.Sprintf("%s -> %s (%.2fs, %d bytes, %s)", r.Listing, r.Output, r.Duration, r.Size, r.Digest)
}

// Run the jobs using the specified options. The results are returned in the
// same order as the jobs. A workers value less than one means there is no
// limit.
func Run(ctx context.Context, jobs []Job, opts basicode.Options, workers int) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", logTag, err)
	}

	if err := checkOutputs(jobs); err != nil {
		return nil, fmt.Errorf("%s: %w", logTag, err)
	}

	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := run(j, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", logTag, err)
	}

	logger.Logf(logger.Allow, logTag, "%d listings encoded", len(jobs))

	return results, nil
}

// checkOutputs makes sure that no two jobs write to the same file. the check
// is made on the cleaned path so "a/prog.wav" and "a/./prog.wav" are the same.
func checkOutputs(jobs []Job) error {
	outputs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		out := filepath.Clean(j.Output)
		if l, ok := outputs[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, l, j.Listing, j.Output)
		}
		outputs[out] = j.Listing
	}
	return nil
}

func run(j Job, opts basicode.Options) (Result, error) {
	prog, err := listing.Load(j.Listing)
	if err != nil {
		return Result{}, err
	}

	data, err := basicode.EncodeWith(prog, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", j.Listing, err)
	}

	aw, err := wavwriter.New(j.Output)
	if err != nil {
		return Result{}, err
	}
	if err := aw.Write(data); err != nil {
		return Result{}, err
	}

	s := basicode.Info(prog, opts)

	return Result{
		Job:      j,
		Samples:  s.NumSamples,
		Duration: s.Duration,
		Size:     len(data),
		Digest:   digest.Sum(data),
	}, nil
}
