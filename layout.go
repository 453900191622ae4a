package flexkit

import "math"

func isDefiniteSize(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// resolveRootAxis resolves the size a node takes along one axis when it
// has no flex-algorithm parent to assign it one: a definite own size
// wins, otherwise it fills a definite parent size, otherwise it shrinks
// to its content size (spec.md §5.1, the entry point's sizing rule).
func resolveRootAxis(sizeVal, minVal, maxVal Value, parentSize float64, parentDefinite bool, contentSize func() float64) float64 {
	if v, ok := sizeVal.Resolve(parentSize, parentDefinite); ok {
		return clampToMinMax(v, minVal, maxVal, parentSize)
	}
	if parentDefinite {
		return clampToMinMax(parentSize, minVal, maxVal, parentSize)
	}
	return clampToMinMax(contentSize(), minVal, maxVal, parentSize)
}

func physicalSize(ax axisView, mainSize, crossSize float64) (w, h float64) {
	if ax.mainHorizontal {
		return mainSize, crossSize
	}
	return crossSize, mainSize
}

func markNodeClean(n *Node, availW, availH float64) {
	n.mu.Lock()
	n.isDirty = false
	n.everLaidOut = true
	n.lastAvailW, n.lastAvailH = availW, availH
	n.lastAvailWDefinite, n.lastAvailHDefinite = true, true
	n.mu.Unlock()
}

// CalculateLayout is the engine's entry point (spec.md §5): given the
// available width/height for n (pass math.Inf(1) for an indefinite
// axis), it resolves n's own size, lays out its entire subtree, and
// leaves every descendant's computed layout and baseline caches populated
// and clean. Idempotent: calling it again with the same width/height on
// an already-clean tree reruns the full pass and reproduces the same result.
func (n *Node) CalculateLayout(width, height float64) {
	widthDefinite := isDefiniteSize(width)
	heightDefinite := isDefiniteSize(height)

	n.mu.RLock()
	widthVal, heightVal := n.width, n.height
	minW, maxW := n.minWidth, n.maxWidth
	minH, maxH := n.minHeight, n.maxHeight
	logger := n.logger()
	n.mu.RUnlock()

	ownW := resolveRootAxis(widthVal, minW, maxW, width, widthDefinite, func() float64 {
		cw, _ := n.measureIntrinsic()
		return cw
	})
	ownH := resolveRootAxis(heightVal, minH, maxH, height, heightDefinite, func() float64 {
		_, ch := n.measureIntrinsic()
		return ch
	})

	n.mu.Lock()
	n.layout.left = 0
	n.layout.top = 0
	n.layout.width = ownW
	n.layout.height = ownH
	n.mu.Unlock()

	logger.Debug("CalculateLayout", "node", n.id, "width", ownW, "height", ownH)

	layoutChildren(n, ownW, ownH)
	computeBaselines(n)
	markNodeClean(n, width, height)
}

// layoutChildren runs the full flex algorithm (C4-C10) to position n's
// normal-flow children inside n's content box, sized outerW x outerH,
// then positions n's absolutely positioned children against that same
// content box, then recurses into every positioned child's own subtree.
func layoutChildren(n *Node, outerW, outerH float64) {
	n.mu.RLock()
	if n.display == DisplayNone {
		n.mu.RUnlock()
		return
	}
	children := append([]*Node(nil), n.children...)
	padL, padR, padT, padB := n.paddingLeft, n.paddingRight, n.paddingTop, n.paddingBottom
	borL, borR, borT, borB := n.borderLeft, n.borderRight, n.borderTop, n.borderBottom
	flexDirection, direction, flexWrap := n.flexDirection, n.direction, n.flexWrap
	justifyContent, alignItems, alignContent := n.justifyContent, n.alignItems, n.alignContent
	alignItemsSafety, alignContentSafety := n.alignItemsSafety, n.alignContentSafety
	n.mu.RUnlock()

	if len(children) == 0 {
		return
	}

	padBorderL := padL.Numeric(outerW, true) + borL.Numeric(outerW, true)
	padBorderR := padR.Numeric(outerW, true) + borR.Numeric(outerW, true)
	padBorderT := padT.Numeric(outerH, true) + borT.Numeric(outerH, true)
	padBorderB := padB.Numeric(outerH, true) + borB.Numeric(outerH, true)

	contentW := maxf(0, outerW-padBorderL-padBorderR)
	contentH := maxf(0, outerH-padBorderT-padBorderB)

	for _, c := range children {
		if nodeDisplay(c) == DisplayNone {
			c.mu.Lock()
			c.layout = computedLayout{}
			c.mu.Unlock()
		}
	}

	ax := newAxisView(flexDirection, direction)

	var containerMainBasis, containerCrossBasis float64
	if ax.mainHorizontal {
		containerMainBasis, containerCrossBasis = contentW, contentH
	} else {
		containerMainBasis, containerCrossBasis = contentH, contentW
	}

	items := collectFlexItems(n, ax, containerMainBasis, true, containerCrossBasis, true)
	mainGap := ax.mainGap(n).Numeric(containerMainBasis, true)
	crossGap := ax.crossGap(n).Numeric(containerCrossBasis, true)

	lines := partitionLines(items, flexWrap, containerMainBasis, true, mainGap)

	for _, line := range lines {
		gapTotal := 0.0
		if len(line.items) > 1 {
			gapTotal = mainGap * float64(len(line.items)-1)
		}
		resolveFlexibleLengths(line, ax, containerMainBasis, true, gapTotal, containerMainBasis, true, containerCrossBasis, true)
		prepareCrossHypothetical(line.items, ax, containerCrossBasis, true)
	}

	distributeLines(lines, ax, alignContent, alignContentSafety, containerCrossBasis, true, crossGap, flexWrap)

	for _, line := range lines {
		resolveCrossSizes(line, ax, alignItems, containerCrossBasis, true)
	}

	for _, line := range lines {
		for _, fi := range line.items {
			childW, childH := physicalSize(ax, fi.resolvedMain, fi.crossSize)
			fi.node.mu.Lock()
			fi.node.layout.width = childW
			fi.node.layout.height = childH
			fi.node.mu.Unlock()

			layoutChildren(fi.node, childW, childH)
			computeBaselines(fi.node)
		}
	}

	for _, line := range lines {
		positionMainAxis(line, ax, justifyContent, OverflowUnsafe, containerMainBasis, true, mainGap)
		positionCrossAxis(line, ax, alignItems, alignItemsSafety)
	}

	for _, line := range lines {
		for _, fi := range line.items {
			ax.setComputedRect(fi.node, fi.mainPos, line.crossPos+fi.crossPos, fi.resolvedMain, fi.crossSize, containerMainBasis)
			fi.node.mu.Lock()
			fi.node.layout.left += padBorderL
			fi.node.layout.top += padBorderT
			fi.node.mu.Unlock()
			applyRelativeOffset(fi.node, contentW, contentH)
			markNodeClean(fi.node, fi.node.layout.width, fi.node.layout.height)
		}
	}

	containingLeft := padBorderL
	containingTop := padBorderT
	containingW := contentW
	containingH := contentH

	for _, c := range children {
		if nodeDisplay(c) == DisplayNone || nodePositionType(c) != PositionAbsolute {
			continue
		}
		layoutAbsoluteChild(c, containingLeft, containingTop, containingW, containingH, justifyContent, alignItems)
		c.mu.RLock()
		cw, ch := c.layout.width, c.layout.height
		c.mu.RUnlock()
		layoutChildren(c, cw, ch)
		computeBaselines(c)
		applyRelativeOffset(c, containingW, containingH)
		markNodeClean(c, cw, ch)
	}
}

func nodeDisplay(n *Node) Display {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.display
}

func nodePositionType(n *Node) PositionType {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.positionType
}
