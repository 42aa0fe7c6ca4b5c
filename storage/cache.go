// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks

// Cache - values written by the open batch
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

type pendingCache struct {
	cache *cache.Cache
}

// pending values must stay until commit or abort
func newCache() Cache {
	return &pendingCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *pendingCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *pendingCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.NoExpiration)
}

func (c *pendingCache) Clear() {
	c.cache.Flush()
}
