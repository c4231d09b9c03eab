/*
 * cache.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package wigner

import "sync"

//symbolCache memoizes symbols keyed by their exact, ordered, arguments.
//Entries are never evicted; the number of distinct small angular momenta
//used in practice is small.
type symbolCache struct {
	mu sync.RWMutex
	m  map[[6]float64]float64
}

func newSymbolCache() *symbolCache {
	return &symbolCache{m: make(map[[6]float64]float64)}
}

func (c *symbolCache) get(k [6]float64) (float64, bool) {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	return v, ok
}

func (c *symbolCache) put(k [6]float64, v float64) {
	c.mu.Lock()
	c.m[k] = v
	c.mu.Unlock()
}

func (c *symbolCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

var (
	cache3j = newSymbolCache()
	cache6j = newSymbolCache()
)

//CacheLen returns the number of memoized 3-j and 6-j symbols.
func CacheLen() (n3j, n6j int) {
	return cache3j.len(), cache6j.len()
}
