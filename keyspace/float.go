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
	"errors"
	"math"
	"math/rand"
	"strconv"
)

var errNaN = errors.New("NaN is not ordered")

// FloatStrategy handles float64 keys. NaN is rejected since it does not
// compare equal to itself.
type FloatStrategy struct{}

func (s *FloatStrategy) Name() string {
	return "float"
}

func (s *FloatStrategy) SupportsKind(kind string) bool {
	switch kind {
	case "float", "float64", "number":
		return true
	}
	return false
}

func (s *FloatStrategy) Priority() int {
	return 2
}

func (s *FloatStrategy) NewSpace(opts Options) Space {
	return newSpace(codec[float64]{
		kind:    s.Name(),
		compare: cmp.Compare[float64],
		parse: func(raw string) (float64, error) {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(f) {
				return 0, errNaN
			}
			if f == 0 {
				f = 0 // -0 and 0 are the same key
			}
			return f, nil
		},
		format: func(key float64) string {
			return strconv.FormatFloat(key, 'g', -1, 64)
		},
		random: func(r *rand.Rand, span int) float64 {
			// two decimals keep the printed keys short
			return math.Round(r.Float64()*float64(span)*100) / 100
		},
	}, opts)
}
