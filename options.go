package strq

import "log/slog"

// An Option configures a [Queue] during [New].
type Option func(*Queue)

// WithAllocator makes the queue account for its storage using a. The
// default is [Heap].
func WithAllocator(a Allocator) Option {
	return func(q *Queue) {
		q.alloc = a
	}
}

// WithLogger sets the logger that the queue reports allocation
// failures to. By default, nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) {
		q.log = l
	}
}
