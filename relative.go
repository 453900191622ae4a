package flexkit

// applyRelativeOffset implements spec.md §5.3: a relatively positioned
// node is laid out exactly as if it were static, then visually offset by
// its resolved insets without affecting any sibling's position. left wins
// over right, top wins over bottom, when both are definite; an undefined
// pair contributes no offset on that axis.
func applyRelativeOffset(n *Node, containingW, containingH float64) {
	if n.positionType != PositionRelative {
		return
	}

	var dx, dy float64
	if left, ok := n.insetLeft.Resolve(containingW, true); ok {
		dx = left
	} else if right, ok := n.insetRight.Resolve(containingW, true); ok {
		dx = -right
	}
	if top, ok := n.insetTop.Resolve(containingH, true); ok {
		dy = top
	} else if bottom, ok := n.insetBottom.Resolve(containingH, true); ok {
		dy = -bottom
	}

	n.layout.left += dx
	n.layout.top += dy
}
