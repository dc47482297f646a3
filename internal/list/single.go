package list

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrCorrupt is wrapped by every error returned from [Single.Check].
var ErrCorrupt = errors.New("corrupt chain")

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the head and tail and removals
// at the head. Nodes are built by the caller and then linked in,
// which leaves the decision of how a node is obtained up to the user
// of the list.
type Single[T any] struct {
	head, tail *SingleNode[T]
	size       int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.size
}

// Front returns the head node, or nil if the list is empty.
func (ls *Single[T]) Front() *SingleNode[T] {
	return ls.head
}

// Back returns the tail node, or nil if the list is empty.
func (ls *Single[T]) Back() *SingleNode[T] {
	return ls.tail
}

// PushFront links n in before the current head. n must not already
// be part of a list.
func (ls *Single[T]) PushFront(n *SingleNode[T]) {
	if ls.head == nil {
		ls.tail = n
	}

	n.next = ls.head
	ls.head = n
	ls.size++
}

// PushBack links n in after the current tail. n must not already be
// part of a list.
func (ls *Single[T]) PushBack(n *SingleNode[T]) {
	n.next = nil
	if ls.head == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}

	ls.tail = n
	ls.size++
}

// PopFront detaches the current head node from the list and returns
// it. It returns nil if the list was already empty.
func (ls *Single[T]) PopFront() *SingleNode[T] {
	n := ls.head
	if n == nil {
		return nil
	}

	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	ls.size--

	n.next = nil
	return n
}

// Reverse reverses the order of the list in place.
func (ls *Single[T]) Reverse() {
	if ls.head == nil || ls.head.next == nil {
		return
	}

	var prev *SingleNode[T]
	cur := ls.head
	ls.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	ls.head = prev
}

// Sort sorts the list in place into ascending order as determined by
// cmp. No nodes are created or destroyed. The sort is not guaranteed
// to be stable.
func (ls *Single[T]) Sort(cmp func(a, b T) int) {
	if ls.head == nil || ls.head.next == nil {
		return
	}

	ls.head = mergeSort(ls.head, cmp)

	tail := ls.head
	for tail.next != nil {
		tail = tail.next
	}
	ls.tail = tail
}

func mergeSort[T any](head *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	left, right := split(head)
	return merge(mergeSort(left, cmp), mergeSort(right, cmp), cmp)
}

// split cuts the chain starting at head in two at its midpoint. The
// first half gets the extra node when the length is odd.
func split[T any](head *SingleNode[T]) (left, right *SingleNode[T]) {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right = slow.next
	slow.next = nil
	return head, right
}

func merge[T any](a, b *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	var dummy SingleNode[T]
	tail := &dummy
	for a != nil && b != nil {
		if cmp(a.Val, b.Val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// Check walks the list and verifies that its bookkeeping matches its
// nodes. Any returned error wraps [ErrCorrupt].
func (ls *Single[T]) Check() error {
	if ls.head == nil || ls.tail == nil {
		if ls.head != ls.tail {
			return errors.Wrap(ErrCorrupt, "exactly one of head and tail is nil")
		}
		if ls.size != 0 {
			return errors.Wrapf(ErrCorrupt, "empty list has size %v", ls.size)
		}
		return nil
	}

	if ls.tail.next != nil {
		return errors.Wrap(ErrCorrupt, "tail is not the end of the chain")
	}

	var count int
	var last *SingleNode[T]
	for n := range ls.Nodes() {
		count++
		last = n
		if count > ls.size {
			return errors.Wrapf(ErrCorrupt, "more than %v nodes reachable", ls.size)
		}
	}
	if count != ls.size {
		return errors.Wrapf(ErrCorrupt, "size is %v but %v nodes are reachable", ls.size, count)
	}
	if last != ls.tail {
		return errors.Wrap(ErrCorrupt, "tail is not the last reachable node")
	}

	return nil
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range ls.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of the list. The list must
// not be modified during iteration.
func (ls *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Next returns the node following n, or nil if n is the last node.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}
