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
	"cmp"
	"math/rand"
	"strconv"
)

// IntStrategy handles signed 64-bit integer keys
type IntStrategy struct{}

func (s *IntStrategy) Name() string {
	return "int"
}

func (s *IntStrategy) SupportsKind(kind string) bool {
	switch kind {
	case "int", "integer", "int64":
		return true
	}
	return false
}

func (s *IntStrategy) Priority() int {
	return 1
}

func (s *IntStrategy) NewSpace(opts Options) Space {
	return newSpace(codec[int64]{
		kind:    s.Name(),
		compare: cmp.Compare[int64],
		parse: func(raw string) (int64, error) {
			return strconv.ParseInt(raw, 10, 64)
		},
		format: func(key int64) string {
			return strconv.FormatInt(key, 10)
		},
		random: func(r *rand.Rand, span int) int64 {
			return r.Int63n(int64(span))
		},
	}, opts)
}
