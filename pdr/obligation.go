package pdr

import (
	"container/heap"

	"github.com/wayne1204/socv-final/cube"
)

// obligation is a proof obligation: a timed cube that must be blocked at
// frame to continue the refutation, linked to the obligation it is a
// predecessor of so a counterexample trace can be rebuilt by walking
// parent pointers from a depth-0 obligation back up to the original bad
// cube (spec.md §4.5 step 2).
type obligation struct {
	c      *cube.Cube
	frame  int
	parent *obligation
	seq    int // insertion order, for the min-heap's tie-break
}

// trace walks o's parent chain from a depth-0 obligation up to the
// original bad cube, returning the cubes in ascending-frame order —
// exactly the counterexample spec.md §4.5 step 2 describes.
func (o *obligation) trace() []*cube.Cube {
	var t []*cube.Cube
	for cur := o; cur != nil; cur = cur.parent {
		t = append(t, cur.c)
	}

	return t
}

// obligationQueue is a min-heap of obligations ordered by ascending
// frame, ties broken by insertion order (spec.md §9: "this matters for
// reproducibility of counterexamples"), built on the standard
// container/heap priority-queue pattern.
type obligationQueue struct {
	items []*obligation
	next  int
}

func newObligationQueue() *obligationQueue {
	q := &obligationQueue{}
	heap.Init(q)

	return q
}

// push enqueues ob, stamping it with the next insertion sequence number.
func (q *obligationQueue) push(ob *obligation) {
	ob.seq = q.next
	q.next++
	heap.Push(q, ob)
}

// pop removes and returns the lowest-frame (then earliest-inserted)
// obligation. Callers must check Len() > 0 first.
func (q *obligationQueue) pop() *obligation {
	return heap.Pop(q).(*obligation)
}

// Len implements heap.Interface.
func (q *obligationQueue) Len() int { return len(q.items) }

// Less implements heap.Interface: ascending frame, then ascending seq.
func (q *obligationQueue) Less(i, j int) bool {
	if q.items[i].frame != q.items[j].frame {
		return q.items[i].frame < q.items[j].frame
	}

	return q.items[i].seq < q.items[j].seq
}

// Swap implements heap.Interface.
func (q *obligationQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push implements heap.Interface. Called by heap.Push; x must be
// *obligation.
func (q *obligationQueue) Push(x interface{}) { q.items = append(q.items, x.(*obligation)) }

// Pop implements heap.Interface. Called by heap.Pop, which has already
// moved the lowest-frame (then earliest-inserted) element to the end of
// the slice; removes and returns that element.
func (q *obligationQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]

	return item
}
