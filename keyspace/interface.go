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

package keyspace

import (
	"fmt"
	"io"
	"math/rand"
)

// Strategy builds key spaces for one kind of key.
type Strategy interface {
	Name() string
	SupportsKind(kind string) bool
	Priority() int // Lower number = higher priority
	NewSpace(opts Options) Space
}

// Space is an AVL tree whose keys are given and returned as text.
type Space interface {
	Kind() string
	Insert(raw string) (bool, error)
	Delete(raw string) (bool, error)
	Contains(raw string) (bool, error)
	Len() int
	Height() int
	Keys() []string
	Levels() []int
	Check() error
	Render(w io.Writer, opts RenderOptions) error
	Version() uint64
	Reset()
	RandomKey(r *rand.Rand) string
}

// Options tune a Space.
type Options struct {
	BloomSize   uint // bits in the seen-key filter
	BloomHashes uint
	KeySpan     int // keys drawn by RandomKey fall in [0, KeySpan)
}

func DefaultOptions() Options {
	return Options{
		BloomSize:   1 << 16,
		BloomHashes: 4,
		KeySpan:     1000,
	}
}

// RenderOptions control how Render labels nodes.
type RenderOptions struct {
	ShowHeight  bool
	ShowBalance bool
	Style       func(key string) string // applied to the key text only
}

// ParseError reports text that is not a valid key of its kind.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s key %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
