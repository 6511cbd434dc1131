package cvparse

// cursor is a forward scanner over section leaves with a single-slot
// pushback.
type cursor struct {
	nodes []*Node
	pos   int
}

func newCursor(nodes []*Node) *cursor {
	return &cursor{nodes: nodes}
}

// next returns the node under the cursor and advances past it.
func (c *cursor) next() (*Node, bool) {
	if c.pos >= len(c.nodes) {
		return nil, false
	}
	n := c.nodes[c.pos]
	c.pos++
	return n, true
}

// back steps the cursor back one position so the last node is read again.
func (c *cursor) back() {
	if c.pos > 0 {
		c.pos--
	}
}
