// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/cybrota/avltree/keyspace"
	"github.com/schollz/progressbar/v3"
)

var ErrMembership = errors.New("membership mismatch")

type StressOptions struct {
	Operations   int
	Seed         int64 // 0 picks a time based seed
	ShowProgress bool
}

type StressReport struct {
	Seed       int64
	Operations int
	Summary    Summary
	MaxHeight  int
	FinalLen   int
	Elapsed    time.Duration
}

func (r StressReport) String() string {
	return fmt.Sprintf("%d operations (seed %d) in %v: %s; final size %d, max height %d",
		r.Operations, r.Seed, r.Elapsed.Round(time.Millisecond), r.Summary, r.FinalLen, r.MaxHeight)
}

// runStress applies random inserts and deletes to space and verifies the
// tree invariants, membership and size after every single step against a
// plain map.
func runStress(space keyspace.Space, opts StressOptions, out io.Writer) (StressReport, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	prng := rand.New(rand.NewSource(seed))

	report := StressReport{Seed: seed}
	model := make(map[string]bool)
	replayer := NewReplayer(space, io.Discard, keyspace.RenderOptions{})

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(opts.Operations,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(out)
			}),
		)
	}

	start := time.Now()
	for i := 0; i < opts.Operations; i++ {
		// canonical form, so the model agrees with the tree on equal keys
		key := space.RandomKey(prng)

		op := Operation{Kind: OpInsert, Key: key}
		if prng.Intn(5) < 2 {
			op.Kind = OpDelete
		}
		if _, err := replayer.Apply(op); err != nil {
			return report, fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}
		if op.Kind == OpInsert {
			model[key] = true
		} else {
			delete(model, key)
		}

		if err := space.Check(); err != nil {
			return report, fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}
		found, err := space.Contains(key)
		if err != nil {
			return report, err
		}
		if found != model[key] || space.Len() != len(model) {
			return report, fmt.Errorf("operation %d (%s): %w: found=%t size=%d, expected found=%t size=%d",
				i+1, op, ErrMembership, found, space.Len(), model[key], len(model))
		}

		report.Operations++
		report.MaxHeight = max(report.MaxHeight, space.Height())
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	report.Summary = replayer.Summary()
	report.FinalLen = space.Len()
	report.Elapsed = time.Since(start)
	return report, nil
}
