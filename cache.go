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
	"strings"
	"time"

	"github.com/cybrota/avltree/keyspace"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered trees are only reused while the user keeps looking at them
	renderCacheExpiration = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree drawings
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// renderKey identifies a drawing: the space, its version and the labels.
// Any mutation bumps the version, so stale drawings are never served.
func renderKey(space keyspace.Space, opts keyspace.RenderOptions) string {
	return fmt.Sprintf("%p/%d/%t/%t/%t", space, space.Version(), opts.ShowHeight, opts.ShowBalance, opts.Style != nil)
}

// RenderTree returns the drawing of space, rendering it only on a miss.
func RenderTree(c *cache.Cache, space keyspace.Space, opts keyspace.RenderOptions) (string, error) {
	key := renderKey(space, opts)
	if val, ok := c.Get(key); ok {
		return val.(string), nil
	}

	var sb strings.Builder
	if err := space.Render(&sb, opts); err != nil {
		return "", err
	}
	drawing := sb.String()

	// Use Set instead of Add to allow overwriting
	c.Set(key, drawing, renderCacheExpiration)
	return drawing, nil
}
