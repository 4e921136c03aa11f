package visibility

import "sync/atomic"

// vendorPrefixes is the probe order; the first match wins.
var vendorPrefixes = []string{"webkit", "ms", "o", "moz", "khtml"}

// prefixCache holds the resolved vendor prefix for the running host. It is
// written at most once per process and read afterwards. Concurrent first
// probes may both store; last write wins and the values are identical because
// the prefix is a property of the host, not of a document instance.
var prefixCache atomic.Pointer[string]

// ResetPrefixCache forgets the cached vendor prefix so the next tracker probes
// again. Intended for tests that switch between simulated hosts.
func ResetPrefixCache() {
	prefixCache.Store(nil)
}

// CachedVendorPrefix returns the cached prefix and whether a probe has run.
func CachedVendorPrefix() (string, bool) {
	p := prefixCache.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

func resolvePrefix(doc Document) string {
	if p := prefixCache.Load(); p != nil {
		return *p
	}
	prefix := probePrefix(doc)
	prefixCache.Store(&prefix)
	return prefix
}

func probePrefix(doc Document) string {
	for _, prefix := range vendorPrefixes {
		if _, ok := doc.Property(prefix + "Hidden"); ok {
			return prefix
		}
	}
	return ""
}

// PropertyNames derives the hidden property, visibility property and change
// event names for prefix.
func PropertyNames(prefix string) (hidden, visibility, change string) {
	if prefix == "" {
		return "hidden", "visibilityState", "visibilitychange"
	}
	return prefix + "Hidden", prefix + "VisibilityState", prefix + "visibilitychange"
}
