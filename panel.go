package cvparse

// PanelSet holds the filtered nodes of a document split into the narrow left
// sidebar and the main column.
type PanelSet struct {
	Left []*Node
	Main []*Node
}

// Relevant reports whether a node carries structural text. Decorative
// geometry and blank extraction artifacts are rejected.
func (l Layout) Relevant(n *Node) bool {
	if n == nil || !n.Kind.IsText() {
		return false
	}
	if n.FullText() == l.BlankSentinel {
		return false
	}
	return true
}

// SplitPanels partitions the nodes of all pages into the sidebar and the main
// panel. Nodes whose top edge sits at or below the footer line ("Page 1 of
// 2") and irrelevant nodes are dropped. A node whose left edge lies exactly
// on the split line belongs to the main panel.
func (l Layout) SplitPanels(pages []*Page) PanelSet {
	var set PanelSet
	split := l.SplitX()
	for _, page := range pages {
		if page == nil {
			continue
		}
		for _, n := range page.Nodes {
			if n == nil || n.BBox.Y1 <= l.FooterHeight {
				continue
			}
			if !l.Relevant(n) {
				continue
			}
			if n.BBox.X0 >= split {
				set.Main = append(set.Main, n)
			} else {
				set.Left = append(set.Left, n)
			}
		}
	}
	return set
}
