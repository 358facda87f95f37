package iocsv

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/gnfish/pkg/niseci"
	"github.com/patrickmn/go-cache"
)

// ReferenceCache keeps parsed reference lists, so stations of a batch
// that share a reference file parse it once. It is safe for concurrent
// use.
type ReferenceCache struct {
	canon Canonicalizer
	cache *cache.Cache
}

// NewReferenceCache creates a cache. Entries expire after 5 minutes.
func NewReferenceCache(canon Canonicalizer) *ReferenceCache {
	return &ReferenceCache{
		canon: canon,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Load returns the reference list of a file. A file modified since it
// was cached is read again.
func (rc *ReferenceCache) Load(path string) (niseci.Reference, error) {
	key, ok := cacheKey(path)
	if ok {
		if v, found := rc.cache.Get(key); found {
			slog.Debug("Reference found in cache", "file", path)
			return v.(niseci.Reference), nil
		}
	}

	res, err := LoadReference(path, rc.canon)
	if err != nil {
		return nil, err
	}
	if ok {
		rc.cache.Set(key, res, cache.DefaultExpiration)
	}
	return res, nil
}

// Len is the number of cached reference lists.
func (rc *ReferenceCache) Len() int {
	return rc.cache.ItemCount()
}

func cacheKey(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s|%d", abs, info.ModTime().UnixNano()), true
}
