// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"container/heap"
	"slices"

	"github.com/poiesic/rhymer/distance"
)

// maxHeap keeps the worst retained result at the root.
type maxHeap []distance.Result

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i].Total > h[j].Total }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(distance.Result)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topN retains the n results with the smallest totals.
type topN struct {
	n     int
	items maxHeap
}

func newTopN(n int) *topN {
	return &topN{n: n, items: make(maxHeap, 0, min(n, 1024))}
}

// Push keeps r if the heap has room or r beats the worst retained result.
func (t *topN) Push(r distance.Result) {
	if t.n <= 0 {
		return
	}
	if len(t.items) < t.n {
		heap.Push(&t.items, r)
		return
	}
	if r.Total < t.items[0].Total {
		t.items[0] = r
		heap.Fix(&t.items, 0)
	}
}

// Merge pushes every result of o into t.
func (t *topN) Merge(o *topN) {
	for _, r := range o.items {
		t.Push(r)
	}
}

func (t *topN) Len() int {
	return len(t.items)
}

// Sorted returns the retained results in ascending order of total.
func (t *topN) Sorted() []distance.Result {
	out := slices.Clone([]distance.Result(t.items))
	slices.SortFunc(out, func(a, b distance.Result) int {
		switch {
		case a.Total < b.Total:
			return -1
		case a.Total > b.Total:
			return 1
		default:
			return 0
		}
	})
	return out
}
