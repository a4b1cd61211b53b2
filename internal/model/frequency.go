package model

import (
	"encoding/json"
	"sort"
)

// FrequencyEntry is one category of a FrequencyTable with its count.
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FrequencyTable maps a category key (a tag symbol or a word) to the number
// of times it occurred. It remembers the order in which keys were first
// seen, which is the tie-break for Sorted. The zero value is an empty table.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// Add counts one occurrence of key.
func (f *FrequencyTable) Add(key string) {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	if _, seen := f.counts[key]; !seen {
		f.order = append(f.order, key)
	}
	f.counts[key]++
	f.total++
}

// Count returns the number of occurrences of key (0 if absent).
func (f FrequencyTable) Count(key string) int {
	return f.counts[key]
}

// Len returns the number of distinct keys.
func (f FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts.
func (f FrequencyTable) Total() int {
	return f.total
}

// Entries returns the entries in first-seen order.
func (f FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(f.order))
	for i, k := range f.order {
		out[i] = FrequencyEntry{Key: k, Count: f.counts[k]}
	}
	return out
}

// Sorted returns the entries by descending count. Equal counts keep their
// first-seen order, so the result is the same on every call.
func (f FrequencyTable) Sorted() []FrequencyEntry {
	out := f.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}


// MarshalJSON encodes the table as its sorted entry list.
func (f FrequencyTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Sorted())
}

// UnmarshalJSON decodes an entry list produced by MarshalJSON.
func (f *FrequencyTable) UnmarshalJSON(data []byte) error {
	var entries []FrequencyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*f = FrequencyTable{}
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		if f.counts == nil {
			f.counts = make(map[string]int, len(entries))
		}
		if _, seen := f.counts[e.Key]; !seen {
			f.order = append(f.order, e.Key)
		}
		f.counts[e.Key] += e.Count
		f.total += e.Count
	}
	return nil
}
