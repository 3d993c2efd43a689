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
	"math/rand"
	"slices"
	"strings"
)

// StringStrategy handles text keys ordered byte-wise
type StringStrategy struct{}

func (s *StringStrategy) Name() string {
	return "string"
}

func (s *StringStrategy) SupportsKind(kind string) bool {
	switch kind {
	case "string", "str", "text":
		return true
	}
	return false
}

func (s *StringStrategy) Priority() int {
	return 3
}

func (s *StringStrategy) NewSpace(opts Options) Space {
	return newSpace(codec[string]{
		kind:    s.Name(),
		compare: strings.Compare,
		parse: func(raw string) (string, error) {
			return raw, nil
		},
		format: func(key string) string {
			return key
		},
		random: func(r *rand.Rand, span int) string {
			return word(r.Intn(span))
		},
	}, opts)
}

// word spells n in base 26 with the letters a to z.
func word(n int) string {
	var b []byte
	for {
		b = append(b, byte('a'+n%26))
		n /= 26
		if n == 0 {
			break
		}
	}
	slices.Reverse(b)
	return string(b)
}
