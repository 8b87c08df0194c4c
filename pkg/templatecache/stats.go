package templatecache

// Stats is an aggregate snapshot of cache usage.
type Stats struct {
	// Entries is the number of cached templates.
	Entries int

	// TotalHits is the sum of all per-key hit counters.
	TotalHits int

	// HitRate is TotalHits divided by Entries, or 0 for an empty cache.
	HitRate float64

	// MostUsed is the key with the highest hit count, or "" for an empty cache.
	MostUsed string
}

// Stats computes the current usage snapshot. When several keys share the
// highest hit count, MostUsed is the one with the strictly greatest counter
// encountered first; ties keep the earlier winner.
func (c *Cache) Stats() Stats {
	s := Stats{Entries: len(c.entries)}

	best := -1
	for key, e := range c.entries {
		s.TotalHits += e.hits
		if e.hits > best {
			best = e.hits
			s.MostUsed = key
		}
	}

	if s.Entries > 0 {
		s.HitRate = float64(s.TotalHits) / float64(s.Entries)
	}

	return s
}

// MemoryEstimate approximates the cache footprint in bytes: the UTF-8 length
// of every key and its content plus a fixed per-entry overhead.
func (c *Cache) MemoryEstimate() int {
	total := 0
	for key, e := range c.entries {
		total += len(key) + len(e.content) + entryOverhead
	}
	return total
}

// Keys returns all cached keys in unspecified order.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}
