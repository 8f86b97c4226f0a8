/*
Copyright © 2026 the KMesh authors.
This file is part of KMesh.

KMesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

KMesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with KMesh.  If not, see <http://www.gnu.org/licenses/>.
*/

package periodic

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache holds recently used meshes keyed by their number of points.
// It is safe for concurrent use.
type Cache struct {
	mu sync.Mutex
	c  *lru.Cache
}

// NewCache returns a cache holding at most maxEntries meshes.
// Zero means no limit.
func NewCache(maxEntries int) *Cache {
	return &Cache{c: lru.New(maxEntries)}
}

// Get returns the mesh of n points, building it if it is not cached.
func (c *Cache) Get(n int) (*Mesh, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.c.Get(n); ok {
		return m.(*Mesh), nil
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	c.c.Add(n, m)
	return m, nil
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.Len()
}
