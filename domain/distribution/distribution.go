package distribution

import "sort"

// Entry is a single row of a distribution summary: one distinct field
// value, how many records carried it, and its share of the total.
type Entry struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary is the frequency distribution of a single field across a
// record source. Entries partition the input exactly once: the counts
// always sum to Total.
type Summary struct {
	Field   string  `json:"field"`
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// Build computes the distribution of canonicalized field values.
// Entries are ordered most-common-first; ties break on value ascending
// so output is deterministic for both tabular and JSON sources.
func Build(field string, values []string) Summary {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	entries := make([]Entry, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, Entry{Value: value, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	total := len(values)
	for i := range entries {
		entries[i].Percent = percentOf(entries[i].Count, total)
	}

	return Summary{Field: field, Entries: entries, Total: total}
}

// FromCounts rebuilds a summary from already-aggregated (value, count)
// pairs, re-deriving percentages and ordering. Re-summarizing a written
// summary table through this is idempotent.
func FromCounts(field string, entries []Entry) Summary {
	total := 0
	for _, e := range entries {
		total += e.Count
	}

	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	for i := range out {
		out[i].Percent = percentOf(out[i].Count, total)
	}

	return Summary{Field: field, Entries: out, Total: total}
}

func percentOf(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100.0
}
