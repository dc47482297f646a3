package strq

// An Allocator decides whether a queue may obtain storage and keeps
// track of what it has handed out. A queue asks for space once for
// itself, once for each node and once for each stored string, whose
// size includes room for a terminator.
type Allocator interface {
	// Alloc reports whether a block of the given size may be
	// allocated. A block is only considered live if Alloc returns
	// true.
	Alloc(size int) bool

	// Release returns a block of the given size that was previously
	// allocated.
	Release(size int)
}

// Heap is an Allocator that always succeeds and keeps no records.
type Heap struct{}

func (Heap) Alloc(int) bool { return true }
func (Heap) Release(int)    {}

// Meter is an Allocator that counts live blocks and can be made to
// fail on demand. The zero value never fails.
type Meter struct {
	// Fail, if not nil, is called before every allocation. If it
	// returns true, the allocation fails.
	Fail func(size int) bool

	blocks, bytes int
}

func (m *Meter) Alloc(size int) bool {
	if m.Fail != nil && m.Fail(size) {
		return false
	}

	m.blocks++
	m.bytes += size
	return true
}

func (m *Meter) Release(size int) {
	m.blocks--
	m.bytes -= size
}

// Blocks returns the number of blocks currently allocated.
func (m *Meter) Blocks() int {
	return m.blocks
}

// Bytes returns the total size of the blocks currently allocated.
func (m *Meter) Bytes() int {
	return m.bytes
}

// FailAfter returns a function for [Meter.Fail] that allows n
// allocations and fails every one after that.
func FailAfter(n int) func(int) bool {
	return func(int) bool {
		if n <= 0 {
			return true
		}
		n--
		return false
	}
}

// FailEvery returns a function for [Meter.Fail] that fails every nth
// allocation attempt, starting with the nth.
func FailEvery(n int) func(int) bool {
	var i int
	return func(int) bool {
		i++
		return n > 0 && i%n == 0
	}
}
