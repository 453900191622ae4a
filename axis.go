package flexkit

// axisView is the "axis view" from spec.md §3: given a container's
// flexDirection/direction/writingMode, it maps the flow-relative tokens
// main/cross/start/end onto concrete physical fields (width|height,
// left|top, marginLeft|marginTop, ...). Every pass from C4 onward builds
// one axisView per container up front and never touches flexDirection
// directly again.
type axisView struct {
	mainHorizontal bool // true: main axis is the physical x axis (width)
	mainReversed   bool // true: main-start is the physical max edge
}

// newAxisView derives the axis view for a flex container, per spec.md §3:
// isMainAxisRow is true for row/row-reverse; isMainAxisReversed is true iff
// row-reverse in an LTR context, row in RTL, or column-reverse. Writing
// mode does not affect row/column containers' main axis in this model —
// only block-axis stacking (column direction) is orientation-fixed, since
// flex containers lay their main axis out along flexDirection regardless
// of writingMode.
func newAxisView(flexDirection FlexDirection, direction Direction) axisView {
	switch flexDirection {
	case FlexDirectionRow:
		return axisView{mainHorizontal: true, mainReversed: direction == DirectionRTL}
	case FlexDirectionRowReverse:
		return axisView{mainHorizontal: true, mainReversed: direction != DirectionRTL}
	case FlexDirectionColumn:
		return axisView{mainHorizontal: false, mainReversed: false}
	case FlexDirectionColumnReverse:
		return axisView{mainHorizontal: false, mainReversed: true}
	}
	return axisView{mainHorizontal: true}
}

func (ax axisView) crossHorizontal() bool { return !ax.mainHorizontal }

// mainSizeValue/crossSizeValue pick the flow-relative size Value out of a node's
// physical width/height style pair.
func (ax axisView) mainSizeValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.width
	}
	return n.height
}

func (ax axisView) crossSizeValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.height
	}
	return n.width
}

func (ax axisView) mainMinValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.minWidth
	}
	return n.minHeight
}

func (ax axisView) mainMaxValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.maxWidth
	}
	return n.maxHeight
}

func (ax axisView) crossMinValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.minHeight
	}
	return n.minWidth
}

func (ax axisView) crossMaxValue(n *Node) Value {
	if ax.mainHorizontal {
		return n.maxHeight
	}
	return n.maxWidth
}

// mainMarginStart/End and crossMarginStart/End resolve to the physical
// margin field corresponding to the flow-relative edge.
func (ax axisView) mainMarginStart(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.marginRight
		}
		return n.marginLeft
	}
	if ax.mainReversed {
		return n.marginBottom
	}
	return n.marginTop
}

func (ax axisView) mainMarginEnd(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.marginLeft
		}
		return n.marginRight
	}
	if ax.mainReversed {
		return n.marginTop
	}
	return n.marginBottom
}

func (ax axisView) crossMarginStart(n *Node) Value {
	if ax.mainHorizontal {
		return n.marginTop
	}
	return n.marginLeft
}

func (ax axisView) crossMarginEnd(n *Node) Value {
	if ax.mainHorizontal {
		return n.marginBottom
	}
	return n.marginRight
}

func (ax axisView) mainPaddingStart(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.paddingRight
		}
		return n.paddingLeft
	}
	if ax.mainReversed {
		return n.paddingBottom
	}
	return n.paddingTop
}

func (ax axisView) mainPaddingEnd(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.paddingLeft
		}
		return n.paddingRight
	}
	if ax.mainReversed {
		return n.paddingTop
	}
	return n.paddingBottom
}

func (ax axisView) crossPaddingStart(n *Node) Value {
	if ax.mainHorizontal {
		return n.paddingTop
	}
	return n.paddingLeft
}

func (ax axisView) crossPaddingEnd(n *Node) Value {
	if ax.mainHorizontal {
		return n.paddingBottom
	}
	return n.paddingRight
}

func (ax axisView) mainBorderStart(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.borderRight
		}
		return n.borderLeft
	}
	if ax.mainReversed {
		return n.borderBottom
	}
	return n.borderTop
}

func (ax axisView) mainBorderEnd(n *Node) Value {
	if ax.mainHorizontal {
		if ax.mainReversed {
			return n.borderLeft
		}
		return n.borderRight
	}
	if ax.mainReversed {
		return n.borderTop
	}
	return n.borderBottom
}

func (ax axisView) crossBorderStart(n *Node) Value {
	if ax.mainHorizontal {
		return n.borderTop
	}
	return n.borderLeft
}

func (ax axisView) crossBorderEnd(n *Node) Value {
	if ax.mainHorizontal {
		return n.borderBottom
	}
	return n.borderRight
}

func (ax axisView) mainGap(n *Node) Value {
	if ax.mainHorizontal {
		return n.columnGap
	}
	return n.rowGap
}

func (ax axisView) crossGap(n *Node) Value {
	if ax.mainHorizontal {
		return n.rowGap
	}
	return n.columnGap
}

// marginPairSum sums both resolved margins on an axis, treating auto as 0
// (callers that care about auto margins as a distribution target handle
// them separately in mainaxis.go/crossaxis.go).
func marginPairSum(start, end Value, basis float64, basisDefinite bool) float64 {
	return start.Numeric(basis, basisDefinite) + end.Numeric(basis, basisDefinite)
}

// setComputedRect writes a node's flow-relative position/size into its
// physical computedLayout fields for this container's axis view.
// mainPos/crossPos are offsets from the *flow-relative* start edge
// (main-start/cross-start); containerMainSize converts a reversed main
// axis (row-reverse, column-reverse, or row under rtl) back to the
// physical edge the item actually occupies.
func (ax axisView) setComputedRect(n *Node, mainPos, crossPos, mainSize, crossSize, containerMainSize float64) {
	physicalMain := mainPos
	if ax.mainReversed {
		physicalMain = containerMainSize - mainPos - mainSize
	}
	if ax.mainHorizontal {
		n.layout.left = physicalMain
		n.layout.top = crossPos
		n.layout.width = mainSize
		n.layout.height = crossSize
		return
	}
	n.layout.left = crossPos
	n.layout.top = physicalMain
	n.layout.width = crossSize
	n.layout.height = mainSize
}
