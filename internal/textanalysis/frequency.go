package textanalysis

import (
	"iter"
	"slices"
)

// WordCount is one row of a ranked frequency table.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable counts tokens and remembers the order each was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Aggregate consumes tokens once and counts each distinct token.
func Aggregate(tokens iter.Seq[string]) *FrequencyTable {
	ft := NewFrequencyTable()
	for tok := range tokens {
		ft.Add(tok)
	}
	return ft
}

// Add counts one occurrence of word.
func (ft *FrequencyTable) Add(word string) {
	if _, seen := ft.counts[word]; !seen {
		ft.order = append(ft.order, word)
	}
	ft.counts[word]++
	ft.total++
}

// Count returns the occurrences of word.
func (ft *FrequencyTable) Count(word string) int {
	return ft.counts[word]
}

// Len returns the number of distinct words.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the number of tokens counted.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Rank returns every word ordered by descending count. Words with equal
// counts keep the order in which they were first added.
func (ft *FrequencyTable) Rank() []WordCount {
	ranked := make([]WordCount, len(ft.order))
	for i, w := range ft.order {
		ranked[i] = WordCount{Word: w, Count: ft.counts[w]}
	}
	slices.SortStableFunc(ranked, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	return ranked
}

// Top returns the first n entries of Rank, or all of them when n <= 0.
func (ft *FrequencyTable) Top(n int) []WordCount {
	ranked := ft.Rank()
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
