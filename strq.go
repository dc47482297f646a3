// Package strq provides a queue of strings backed by a singly-linked
// chain of nodes. It supports insertion at both ends, removal from
// the head, in-place reversal and sorting.
//
// A Queue is not safe for concurrent use.
package strq

import (
	"iter"
	"log/slog"
	"strings"
	"unsafe"

	"deedles.dev/strq/internal/list"
	"github.com/pkg/errors"
)

var (
	queueSize = int(unsafe.Sizeof(Queue{}))
	nodeSize  = int(unsafe.Sizeof(list.SingleNode[string]{}))
)

// A Queue holds an ordered sequence of strings. Queues must be
// created with [New] and are released with [Queue.Free]. Every method
// may be called on a nil or freed *Queue, in which case it behaves as
// though the queue were absent: mutators do nothing and report
// failure and queries return zero values.
type Queue struct {
	ls    list.Single[string]
	alloc Allocator
	log   *slog.Logger
}

// New returns a new, empty Queue. It returns nil if the queue's
// Allocator refuses to provide space for it.
func New(opts ...Option) *Queue {
	q := Queue{
		alloc: Heap{},
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&q)
	}

	if !q.alloc.Alloc(queueSize) {
		q.log.Debug("queue allocation failed", "size", queueSize)
		return nil
	}
	return &q
}

func (q *Queue) live() bool {
	return q != nil && q.alloc != nil
}

// Free releases every element of the queue and then the queue
// itself. The queue must not be used afterwards except as an absent
// queue.
func (q *Queue) Free() {
	if !q.live() {
		return
	}

	for n := q.ls.PopFront(); n != nil; n = q.ls.PopFront() {
		q.release(n)
	}
	q.alloc.Release(queueSize)
	q.alloc = nil
}

func (q *Queue) node(s string) *list.SingleNode[string] {
	if !q.alloc.Alloc(nodeSize) {
		q.log.Debug("node allocation failed", "size", nodeSize)
		return nil
	}

	if !q.alloc.Alloc(len(s) + 1) {
		q.alloc.Release(nodeSize)
		q.log.Debug("value allocation failed", "size", len(s)+1)
		return nil
	}

	return &list.SingleNode[string]{Val: strings.Clone(s)}
}

func (q *Queue) release(n *list.SingleNode[string]) {
	q.alloc.Release(len(n.Val) + 1)
	q.alloc.Release(nodeSize)
}

// InsertHead inserts a copy of s at the head of the queue. It returns
// false, leaving the queue unchanged, if the queue is absent or space
// for the new element could not be allocated.
func (q *Queue) InsertHead(s string) bool {
	if !q.live() {
		return false
	}

	n := q.node(s)
	if n == nil {
		return false
	}

	q.ls.PushFront(n)
	return true
}

// InsertTail inserts a copy of s at the tail of the queue. It returns
// false, leaving the queue unchanged, if the queue is absent or space
// for the new element could not be allocated.
func (q *Queue) InsertTail(s string) bool {
	if !q.live() {
		return false
	}

	n := q.node(s)
	if n == nil {
		return false
	}

	q.ls.PushBack(n)
	return true
}

// RemoveHead removes the element at the head of the queue and returns
// it. It returns false if the queue is absent or empty.
func (q *Queue) RemoveHead() (string, bool) {
	if !q.live() {
		return "", false
	}

	n := q.ls.PopFront()
	if n == nil {
		return "", false
	}

	q.release(n)
	return n.Val, true
}

// RemoveHeadInto is like [Queue.RemoveHead] but copies the removed
// element into buf instead of returning it. At most len(buf)-1 bytes
// of the element are copied, followed by a zero byte, and the rest of
// buf is zeroed. Longer elements are silently truncated. If buf is
// empty, the element is discarded.
func (q *Queue) RemoveHeadInto(buf []byte) bool {
	v, ok := q.RemoveHead()
	if !ok {
		return false
	}

	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], v)
		clear(buf[n:])
	}
	return true
}

// Size returns the number of elements in the queue.
func (q *Queue) Size() int {
	if !q.live() {
		return 0
	}
	return q.ls.Len()
}

// Reverse reverses the order of the elements of the queue in place.
func (q *Queue) Reverse() {
	if !q.live() {
		return
	}
	q.ls.Reverse()
}

// Sort sorts the elements of the queue in place into ascending order
// as determined by [CompareFold]. Elements that compare as equal may
// end up in any relative order.
func (q *Queue) Sort() {
	if !q.live() {
		return
	}
	q.ls.Sort(CompareFold)
}

// Values returns an iterator over the elements of the queue from head
// to tail. The queue must not be modified during iteration.
func (q *Queue) Values() iter.Seq[string] {
	if !q.live() {
		return func(func(string) bool) {}
	}
	return q.ls.All()
}

// Check verifies the internal consistency of the queue, returning an
// error describing the first problem found. An absent queue is always
// consistent.
func (q *Queue) Check() error {
	if !q.live() {
		return nil
	}
	return errors.Wrap(q.ls.Check(), "check queue")
}
