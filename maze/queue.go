package maze

// branch is one partial route in the search frontier.
type branch struct {
	state State
	trail *trail
	seq   int // insertion order, breaks cost ties deterministically
	index int // heap index
}

// branchPQ implements heap.Interface as a min-heap on (cost, seq).
type branchPQ []*branch

func (pq branchPQ) Len() int { return len(pq) }

func (pq branchPQ) Less(i, j int) bool {
	if pq[i].state.Cost != pq[j].state.Cost {
		return pq[i].state.Cost < pq[j].state.Cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq branchPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x as element Len().
func (pq *branchPQ) Push(x any) {
	b := x.(*branch)
	b.index = len(*pq)
	*pq = append(*pq, b)
}

// Pop removes and returns the last element.
func (pq *branchPQ) Pop() any {
	old := *pq
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	b.index = -1
	*pq = old[:n-1]
	return b
}
