package flexkit

import "math"

// resolveAlignForItem resolves a flex item's effective cross-axis
// alignment keyword: align-self:auto inherits the container's
// align-items, "normal" computes to stretch, and the Box Alignment L3
// physical/logical keywords (start/end/self-start/self-end/left/right)
// collapse onto the flex-start/flex-end/stretch/baseline vocabulary
// positionCrossAxis understands (spec.md §4.5).
func resolveAlignForItem(self AlignSelf, containerAlignItems AlignItems, ax axisView) AlignItems {
	var a AlignItems
	if self == AlignSelfAuto {
		a = containerAlignItems
	} else {
		a = AlignItems(self)
	}
	switch a {
	case AlignNormal:
		return AlignStretch
	case AlignStart, AlignSelfStart:
		return AlignFlexStart
	case AlignEnd, AlignSelfEnd:
		return AlignFlexEnd
	case AlignLeft:
		if !ax.crossHorizontal() {
			return AlignFlexStart
		}
		return AlignFlexStart
	case AlignRight:
		if !ax.crossHorizontal() {
			return AlignFlexEnd
		}
		return AlignFlexEnd
	default:
		return a
	}
}

// itemHypotheticalCross computes a flex item's cross size before
// align-self:stretch is considered: its own definite cross-size property
// if present, otherwise its content size measured against the resolved
// main size (spec.md §4.5's cross-size determination).
func itemHypotheticalCross(fi *flexItem, ax axisView, containerCrossBasis float64, containerCrossDefinite bool) float64 {
	n := fi.node
	crossVal := ax.crossSizeValue(n)
	if v, ok := crossVal.Resolve(containerCrossBasis, containerCrossDefinite); ok {
		return clampCrossAxis(n, ax, v, containerCrossBasis, containerCrossDefinite)
	}

	if n.hasAspectRatio {
		var cross float64
		if ax.mainHorizontal {
			cross = fi.resolvedMain / n.aspectRatio
		} else {
			cross = fi.resolvedMain * n.aspectRatio
		}
		return clampCrossAxis(n, ax, cross, containerCrossBasis, containerCrossDefinite)
	}

	n.mu.RLock()
	measureFunc := n.measureFunc
	hasChildren := len(n.children) > 0
	n.mu.RUnlock()

	var cross float64
	if !hasChildren && measureFunc != nil {
		var availW, availH float64 = math.Inf(1), math.Inf(1)
		if ax.mainHorizontal {
			availW = fi.resolvedMain
		} else {
			availH = fi.resolvedMain
		}
		cw, ch := measureFunc(n, availW, availH)
		if ax.mainHorizontal {
			cross = maxf(0, ch)
		} else {
			cross = maxf(0, cw)
		}
	} else {
		cw, ch := n.measureIntrinsic()
		if ax.mainHorizontal {
			cross = ch
		} else {
			cross = cw
		}
	}
	return clampCrossAxis(n, ax, cross, containerCrossBasis, containerCrossDefinite)
}

func clampCrossAxis(n *Node, ax axisView, v float64, containerCrossBasis float64, containerCrossDefinite bool) float64 {
	minVal := ax.crossMinValue(n)
	maxVal := ax.crossMaxValue(n)
	lo := 0.0
	if !minVal.IsAuto() {
		if resolved, ok := minVal.Resolve(containerCrossBasis, containerCrossDefinite); ok {
			lo = maxf(0, resolved)
		}
	}
	hi := math.Inf(1)
	if resolved, ok := maxVal.Resolve(containerCrossBasis, containerCrossDefinite); ok {
		hi = resolved
	}
	if hi < lo {
		hi = lo
	}
	return clamp(v, lo, hi)
}

// prepareCrossHypothetical fills in every item's hypothetical cross size,
// used both to size lines (distribute.go) and as the fallback for items
// that do not stretch.
func prepareCrossHypothetical(items []*flexItem, ax axisView, containerCrossBasis float64, containerCrossDefinite bool) {
	for _, fi := range items {
		fi.crossSize = itemHypotheticalCross(fi, ax, containerCrossBasis, containerCrossDefinite)
	}
}

// resolveCrossSizes finalizes each item's cross size once its line's
// cross size is known: align-self:stretch items with an auto or undefined
// cross-size property and no cross-axis auto margins expand to fill the line,
// clamped to their own min/max cross size; everything else keeps its
// hypothetical cross size (spec.md §4.5/§4.9).
func resolveCrossSizes(line *flexLine, ax axisView, containerAlignItems AlignItems, containerCrossBasis float64, containerCrossDefinite bool) {
	for _, fi := range line.items {
		n := fi.node
		align := resolveAlignForItem(n.alignSelf, containerAlignItems, ax)
		crossVal := ax.crossSizeValue(n)
		if align == AlignStretch && (crossVal.IsAuto() || crossVal.Kind == ValueUndefined) && !fi.marginCrossStart.auto && !fi.marginCrossEnd.auto {
			marginSum := 0.0
			if !fi.marginCrossStart.auto {
				marginSum += fi.marginCrossStart.value
			}
			if !fi.marginCrossEnd.auto {
				marginSum += fi.marginCrossEnd.value
			}
			stretched := line.crossSize - marginSum
			fi.crossSize = clampCrossAxis(n, ax, maxf(0, stretched), containerCrossBasis, containerCrossDefinite)
		}
	}
}

// computeBaselines populates n's first/last baseline cache from its
// already-laid-out subtree: a leaf with a baselineFunc reports its own
// baseline; a container's baseline is its first (respectively last)
// in-flow child's baseline, offset by that child's cross-axis top
// position, cascading recursively; a container with no usable child
// falls back to the after edge of its box (spec.md §4.9's baseline
// alignment fallback). Callers must invoke this only after n's own
// subtree has been fully laid out.
func computeBaselines(n *Node) {
	n.mu.RLock()
	baselineFunc := n.baselineFunc
	children := append([]*Node(nil), n.children...)
	w, h := n.layout.width, n.layout.height
	n.mu.RUnlock()

	if baselineFunc != nil {
		pos := clamp(baselineFunc(n, w, h), 0, h)
		n.mu.Lock()
		n.layout.firstBaseline = pos
		n.layout.lastBaseline = pos
		n.baseline.pos = pos
		n.baseline.has = true
		n.mu.Unlock()
		return
	}

	var firstChild, lastChild *Node
	for _, c := range children {
		if c.isNoneOrAbsolute() {
			continue
		}
		if firstChild == nil {
			firstChild = c
		}
		lastChild = c
	}

	if firstChild == nil {
		n.mu.Lock()
		n.layout.firstBaseline = h
		n.layout.lastBaseline = h
		n.baseline.pos = h
		n.baseline.has = true
		n.mu.Unlock()
		return
	}

	firstPos, _ := firstChild.GetFirstBaseline()
	firstTop := firstChild.GetComputedTop()
	lastPos, _ := lastChild.GetLastBaseline()
	lastTop := lastChild.GetComputedTop()

	n.mu.Lock()
	n.layout.firstBaseline = firstTop + firstPos
	n.layout.lastBaseline = lastTop + lastPos
	n.baseline.pos = n.layout.firstBaseline
	n.baseline.has = true
	n.mu.Unlock()
}

// positionCrossAxis assigns fi.crossPos for every item in line, measured
// from the line's cross-start edge. Cross-axis auto margins absorb all
// positive free space for that item alone (no align-items equivalent to
// justify-content's space-between family exists on the cross axis);
// otherwise the item is positioned per its resolved align keyword,
// including real first-baseline alignment.
func positionCrossAxis(line *flexLine, ax axisView, containerAlignItems AlignItems, safety OverflowSafety) {
	var maxAscent float64
	haveBaseline := false
	for _, fi := range line.items {
		align := resolveAlignForItem(fi.node.alignSelf, containerAlignItems, ax)
		if align == AlignBaseline {
			pos, ok := fi.node.GetFirstBaseline()
			if ok {
				haveBaseline = true
				maxAscent = maxf(maxAscent, fi.marginCrossStart.value+pos)
			}
		}
	}

	for _, fi := range line.items {
		freeSpace := line.crossSize - fi.crossSize
		if fi.marginCrossStart.auto || fi.marginCrossEnd.auto {
			autoCount := 0
			if fi.marginCrossStart.auto {
				autoCount++
			}
			if fi.marginCrossEnd.auto {
				autoCount++
			}
			share := 0.0
			if freeSpace > 0 {
				share = freeSpace / float64(autoCount)
			}
			start := share
			if !fi.marginCrossStart.auto {
				start = fi.marginCrossStart.value
			}
			fi.crossPos = start
			continue
		}

		mStart, mEnd := fi.marginCrossStart.value, fi.marginCrossEnd.value
		available := freeSpace - mStart - mEnd

		align := resolveAlignForItem(fi.node.alignSelf, containerAlignItems, ax)
		if align == AlignBaseline && !haveBaseline {
			align = AlignFlexStart
		}

		var pos float64
		switch align {
		case AlignFlexStart, AlignStretch:
			pos = mStart
		case AlignFlexEnd:
			pos = mStart + available
		case AlignCenter:
			pos = mStart + available/2
		case AlignBaseline:
			itemBaseline, _ := fi.node.GetFirstBaseline()
			pos = maxAscent - itemBaseline
		default:
			pos = mStart
		}

		if available < 0 && safety == OverflowSafe {
			pos = mStart
		}
		fi.crossPos = pos
	}
}
