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
	"fmt"
	"io"

	"github.com/cybrota/avltree/keyspace"
)

// Summary counts what a replay did.
type Summary struct {
	Inserted int
	Deleted  int
	Ignored  int // duplicate inserts and deletes of missing keys
	Lookups  int
	Hits     int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d inserted, %d deleted, %d ignored, %d/%d lookups found",
		s.Inserted, s.Deleted, s.Ignored, s.Hits, s.Lookups)
}

// Replayer applies operations to a key space and reports each step.
type Replayer struct {
	space     keyspace.Space
	out       io.Writer
	render    keyspace.RenderOptions
	checkEach bool // verify the tree after every mutation
	verbose   bool // report every operation, not only print and check
	summary   Summary
}

func NewReplayer(space keyspace.Space, out io.Writer, render keyspace.RenderOptions) *Replayer {
	return &Replayer{
		space:  space,
		out:    out,
		render: render,
	}
}

// Apply performs one operation and returns a one-line description of the
// outcome. Tree renders are written to the output directly.
func (r *Replayer) Apply(op Operation) (string, error) {
	var msg string

	switch op.Kind {
	case OpInsert:
		added, err := r.space.Insert(op.Key)
		if err != nil {
			return "", err
		}
		if added {
			r.summary.Inserted++
			msg = fmt.Sprintf("inserted %s", op.Key)
		} else {
			r.summary.Ignored++
			msg = fmt.Sprintf("%s already present", op.Key)
		}
	case OpDelete:
		removed, err := r.space.Delete(op.Key)
		if err != nil {
			return "", err
		}
		if removed {
			r.summary.Deleted++
			msg = fmt.Sprintf("deleted %s", op.Key)
		} else {
			r.summary.Ignored++
			msg = fmt.Sprintf("%s not present", op.Key)
		}
	case OpFind:
		found, err := r.space.Contains(op.Key)
		if err != nil {
			return "", err
		}
		r.summary.Lookups++
		if found {
			r.summary.Hits++
			msg = fmt.Sprintf("%s found", op.Key)
		} else {
			msg = fmt.Sprintf("%s not found", op.Key)
		}
	case OpPrint:
		if r.space.Len() == 0 {
			return "(empty tree)", nil
		}
		if err := r.space.Render(r.out, r.render); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d keys, height %d", r.space.Len(), r.space.Height()), nil
	case OpCheck:
		if err := r.space.Check(); err != nil {
			return "", err
		}
		return fmt.Sprintf("invariants hold for %d keys", r.space.Len()), nil
	case OpClear:
		r.space.Reset()
		return "cleared", nil
	default:
		return "", fmt.Errorf("%w %v", ErrUnknownVerb, op.Kind)
	}

	if r.checkEach && (op.Kind == OpInsert || op.Kind == OpDelete) {
		if err := r.space.Check(); err != nil {
			return "", fmt.Errorf("after %s: %w", op, err)
		}
	}
	return msg, nil
}

// Run applies ops in order and stops at the first failure, naming the
// script line when known.
func (r *Replayer) Run(ops []Operation) (Summary, error) {
	for _, op := range ops {
		msg, err := r.Apply(op)
		if err != nil {
			if op.Line > 0 {
				return r.summary, fmt.Errorf("line %d: %w", op.Line, err)
			}
			return r.summary, err
		}
		if r.verbose || op.Kind == OpPrint || op.Kind == OpCheck || op.Kind == OpClear {
			fmt.Fprintln(r.out, msg)
		}
	}
	return r.summary, nil
}

func (r *Replayer) Summary() Summary {
	return r.summary
}
