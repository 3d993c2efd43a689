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

	"github.com/cybrota/avltree/avl"
	"github.com/willf/bloom"
)

// codec converts keys of one type to and from text.
type codec[K any] struct {
	kind    string
	compare func(K, K) int
	parse   func(string) (K, error)
	format  func(K) string
	random  func(r *rand.Rand, span int) K
}

// space implements Space over an avl.Tree. The bloom filter remembers every
// key inserted since the last reset, so lookups of keys that were never
// inserted skip the tree.
type space[K any] struct {
	codec   codec[K]
	opts    Options
	tree    *avl.Tree[K]
	seen    *bloom.BloomFilter
	version uint64
}

func newSpace[K any](c codec[K], opts Options) *space[K] {
	if opts.BloomSize == 0 || opts.BloomHashes == 0 {
		defaults := DefaultOptions()
		opts.BloomSize, opts.BloomHashes = defaults.BloomSize, defaults.BloomHashes
	}
	if opts.KeySpan <= 0 {
		opts.KeySpan = DefaultOptions().KeySpan
	}
	return &space[K]{
		codec: c,
		opts:  opts,
		tree:  avl.NewFunc(c.compare),
		seen:  bloom.New(opts.BloomSize, opts.BloomHashes),
	}
}

func (s *space[K]) Kind() string {
	return s.codec.kind
}

// key parses raw and returns it with its canonical text, so that "007" and
// "7" share a filter entry.
func (s *space[K]) key(raw string) (K, string, error) {
	key, err := s.codec.parse(raw)
	if err != nil {
		return key, "", &ParseError{Kind: s.codec.kind, Input: raw, Err: err}
	}
	return key, s.codec.format(key), nil
}

func (s *space[K]) Insert(raw string) (bool, error) {
	key, canonical, err := s.key(raw)
	if err != nil {
		return false, err
	}
	added := s.tree.Insert(key)
	if added {
		s.seen.AddString(canonical)
		s.version++
	}
	return added, nil
}

func (s *space[K]) Delete(raw string) (bool, error) {
	key, canonical, err := s.key(raw)
	if err != nil {
		return false, err
	}
	if !s.seen.TestString(canonical) {
		return false, nil
	}
	removed := s.tree.Delete(key)
	if removed {
		s.version++
	}
	return removed, nil
}

func (s *space[K]) Contains(raw string) (bool, error) {
	key, canonical, err := s.key(raw)
	if err != nil {
		return false, err
	}
	if !s.seen.TestString(canonical) {
		return false, nil
	}
	return s.tree.Contains(key), nil
}

func (s *space[K]) Len() int {
	return s.tree.Len()
}

func (s *space[K]) Height() int {
	return s.tree.Height()
}

func (s *space[K]) Keys() []string {
	keys := make([]string, 0, s.tree.Len())
	s.tree.Walk(func(key K) bool {
		keys = append(keys, s.codec.format(key))
		return true
	})
	return keys
}

func (s *space[K]) Levels() []int {
	return s.tree.Levels()
}

func (s *space[K]) Check() error {
	return s.tree.Check()
}

func (s *space[K]) Render(w io.Writer, opts RenderOptions) error {
	return avl.Fprint(w, s.tree.Root(), func(node *avl.Node[K]) string {
		label := s.codec.format(node.Key())
		if opts.Style != nil {
			label = opts.Style(label)
		}
		if opts.ShowHeight {
			label += fmt.Sprintf(" (h=%d)", node.Height())
		}
		if opts.ShowBalance {
			label += fmt.Sprintf(" [%+d]", node.Balance())
		}
		return label
	})
}

func (s *space[K]) Version() uint64 {
	return s.version
}

func (s *space[K]) Reset() {
	if s.tree.Len() > 0 {
		s.version++
	}
	s.tree.Clear()
	s.seen.ClearAll()
}

func (s *space[K]) RandomKey(r *rand.Rand) string {
	return s.codec.format(s.codec.random(r, s.opts.KeySpan))
}
