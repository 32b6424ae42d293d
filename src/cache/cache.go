package cache

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CacheConfig holds cache configuration. Wiki articles change rarely and get
// a long TTL; garland name lookups are effectively static but cheap, so they
// share the default.
type CacheConfig struct {
	Directory       string
	DefaultTTLHours int
	WikiTTLHours    int
}

// FileCachingTransport implements http.RoundTripper with file-based caching.
// It sits under the real HTTP client so both the wiki and garland fetches
// are cached transparently.
type FileCachingTransport struct {
	config    CacheConfig
	transport http.RoundTripper
	runStart  time.Time
}

// NewFileCachingTransport creates a new caching transport
func NewFileCachingTransport(config CacheConfig, transport http.RoundTripper) *FileCachingTransport {
	return &FileCachingTransport{
		config:    config,
		transport: transport,
		runStart:  time.Now(),
	}
}

// RoundTrip implements http.RoundTripper with caching
func (t *FileCachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cacheKey := t.makeCacheKey(req)
	cachePath := t.cachePath(cacheKey)

	if cachedResp, err := t.readCacheEntry(cacheKey); err == nil && !t.cacheExpired(cachePath) {
		slog.Debug("cache hit", "url", req.URL.String())
		return cachedResp, nil
	}

	slog.Info("fetching", "url", req.URL.String())
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	// Cache successful responses
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		t.writeCacheEntry(cacheKey, resp)
	}

	// Return a fresh response from cache to avoid body consumption issues
	if cachedResp, err := t.readCacheEntry(cacheKey); err == nil {
		return cachedResp, nil
	}

	return resp, nil
}

// makeCacheKey creates a cache key from the request, suffixed by endpoint
// kind so TTLs and manual cleanup can tell wiki pages from name lookups.
func (t *FileCachingTransport) makeCacheKey(req *http.Request) string {
	key := req.URL.String()
	md5sum := md5.Sum([]byte(key))
	cacheKey := hex.EncodeToString(md5sum[:])

	if strings.HasPrefix(req.URL.Path, "/wiki/") {
		return cacheKey + "-wiki"
	}
	if filepath.Ext(req.URL.Path) == ".json" {
		return cacheKey + "-garland"
	}

	return cacheKey
}

// cachePath returns the file path for a cache key
func (t *FileCachingTransport) cachePath(cacheKey string) string {
	return filepath.Join(t.config.Directory, cacheKey)
}

// cacheExpired checks if a cache file has expired
func (t *FileCachingTransport) cacheExpired(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return true // File doesn't exist or can't be read
	}

	ttlHours := t.config.DefaultTTLHours
	if strings.HasSuffix(filepath.Base(path), "-wiki") && t.config.WikiTTLHours > 0 {
		ttlHours = t.config.WikiTTLHours
	}

	age := t.runStart.Sub(stat.ModTime())
	return age >= time.Duration(ttlHours)*time.Hour
}

// readCacheEntry reads a cached HTTP response
func (t *FileCachingTransport) readCacheEntry(cacheKey string) (*http.Response, error) {
	path := t.cachePath(cacheKey)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
}

// writeCacheEntry writes an HTTP response to cache
func (t *FileCachingTransport) writeCacheEntry(cacheKey string, resp *http.Response) error {
	path := t.cachePath(cacheKey)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	dumpedBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return fmt.Errorf("failed to dump response: %w", err)
	}

	if err := os.WriteFile(path, dumpedBytes, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}
