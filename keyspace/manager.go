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

import "fmt"

type Manager struct {
	strategies []Strategy
}

// NewManager returns a manager with the built-in int, float and string
// strategies registered.
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterStrategy(&IntStrategy{})
	manager.RegisterStrategy(&FloatStrategy{})
	manager.RegisterStrategy(&StringStrategy{})

	return manager
}

func (m *Manager) RegisterStrategy(strategy Strategy) {
	m.strategies = append(m.strategies, strategy)
}

// ForKind returns the highest priority strategy supporting kind. On equal
// priority the one registered first wins.
func (m *Manager) ForKind(kind string) (Strategy, error) {
	var best Strategy
	for _, strategy := range m.strategies {
		if !strategy.SupportsKind(kind) {
			continue
		}
		if best == nil || strategy.Priority() < best.Priority() {
			best = strategy
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no key strategy found for kind %q", kind)
	}
	return best, nil
}

// NewSpace is a shortcut for ForKind followed by Strategy.NewSpace.
func (m *Manager) NewSpace(kind string, opts Options) (Space, error) {
	strategy, err := m.ForKind(kind)
	if err != nil {
		return nil, err
	}
	return strategy.NewSpace(opts), nil
}

// Kinds lists the names of the registered strategies.
func (m *Manager) Kinds() []string {
	names := make([]string, 0, len(m.strategies))
	for _, strategy := range m.strategies {
		names = append(names, strategy.Name())
	}
	return names
}
