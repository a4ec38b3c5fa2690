package parse

// DefaultMaxDepth bounds container nesting so that adversarially deep input
// cannot exhaust the call stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
