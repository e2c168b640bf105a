package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

// sorted orders counts by value descending, then key ascending so ties are
// stable across runs.
func sorted(counts map[string]int) []kv {
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}

// TopN returns the top n entries as "name:count" strings (e.g. "张三:12").
func TopN(counts map[string]int, n int) []string {
	ss := sorted(counts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return top
}

// PrintTopN writes the top n entries as a numbered list.
func PrintTopN(w io.Writer, counts map[string]int, n int) {
	for i, line := range sorted(counts) {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, line.Key, line.Value)
	}
}
