// Package parse parses sjson text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
// Parsing is recursive descent with one token of lookahead. Any error fails
// the whole top-level parse: sibling elements parsed before the error are
// discarded rather than retained as a partial tree, keeping failure behavior
// deterministic.
//
// # Related packages
//
//   - github.com/sjson-format/go-sjson/ir - node representation
//   - github.com/sjson-format/go-sjson/encode - encode nodes to text
//   - github.com/sjson-format/go-sjson/token - tokenization
package parse
