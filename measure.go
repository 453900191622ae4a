package flexkit

import "math"

// measureIntrinsic computes and caches n's intrinsic content size: the
// size n would take with no constraint from its parent, used as the
// min-content-ish fallback when a definite basis is unavailable (spec.md
// §4.1's flex-basis "content" case, and §6's automatic minimum size).
// The result excludes margins but includes n's own padding and border.
func (n *Node) measureIntrinsic() (w, h float64) {
	n.mu.RLock()
	if n.intrinsic.hasW && n.intrinsic.hasH {
		w, h = n.intrinsic.w, n.intrinsic.h
		n.mu.RUnlock()
		return w, h
	}
	measureFunc := n.measureFunc
	children := append([]*Node(nil), n.children...)
	padT, padR, padB, padL := n.paddingTop, n.paddingRight, n.paddingBottom, n.paddingLeft
	borT, borR, borB, borL := n.borderTop, n.borderRight, n.borderBottom, n.borderLeft
	flexDirection, direction, flexWrap := n.flexDirection, n.direction, n.flexWrap
	logger := n.logger()
	n.mu.RUnlock()

	padBorderX := padL.Numeric(0, false) + padR.Numeric(0, false) + borL.Numeric(0, false) + borR.Numeric(0, false)
	padBorderY := padT.Numeric(0, false) + padB.Numeric(0, false) + borT.Numeric(0, false) + borB.Numeric(0, false)

	if len(children) == 0 {
		if measureFunc != nil {
			cw, ch := measureFunc(n, math.Inf(1), math.Inf(1))
			w = maxf(cw, 0) + padBorderX
			h = maxf(ch, 0) + padBorderY
		} else {
			w, h = padBorderX, padBorderY
		}
	} else {
		ax := newAxisView(flexDirection, direction)
		var mainSum, crossMax float64
		count := 0
		for _, c := range children {
			if c.isNoneOrAbsolute() {
				continue
			}
			cw, ch := c.measureIntrinsic()
			mainOuter, crossOuter := ax.outerIntrinsic(c, cw, ch)
			mainSum += mainOuter
			crossMax = maxf(crossMax, crossOuter)
			count++
		}
		mainGap := ax.mainGap(n)
		crossGapV := ax.crossGap(n)
		mg := mainGap.Numeric(0, false)
		cg := crossGapV.Numeric(0, false)

		var mainAgg, crossAgg float64
		if flexWrap == FlexNoWrap {
			mainAgg = mainSum
			if count > 1 {
				mainAgg += mg * float64(count-1)
			}
			crossAgg = crossMax
		} else {
			// Wrapping containers: over-approximate deliberately (kept
			// as-is; see the multi-line intrinsic sizing decision).
			mainAgg = 0
			for _, c := range children {
				if c.isNoneOrAbsolute() {
					continue
				}
				cw, ch := c.measureIntrinsic()
				mOuter, _ := ax.outerIntrinsic(c, cw, ch)
				mainAgg = maxf(mainAgg, mOuter)
			}
			crossAgg = 0
			for _, c := range children {
				if c.isNoneOrAbsolute() {
					continue
				}
				cw, ch := c.measureIntrinsic()
				_, cOuter := ax.outerIntrinsic(c, cw, ch)
				crossAgg += cOuter
			}
			if count > 1 {
				crossAgg += cg * float64(count-1)
			}
		}

		if ax.mainHorizontal {
			w = mainAgg + padBorderX
			h = crossAgg + padBorderY
		} else {
			w = crossAgg + padBorderX
			h = mainAgg + padBorderY
		}
	}

	logger.Trace("measureIntrinsic", "node", n.id, "w", w, "h", h)

	n.mu.Lock()
	n.intrinsic.w, n.intrinsic.h = w, h
	n.intrinsic.hasW, n.intrinsic.hasH = true, true
	n.mu.Unlock()
	return w, h
}

// isNoneOrAbsolute reports whether n should be excluded from its parent's
// normal-flow aggregation: display:none items never participate, and
// absolutely-positioned items are sized independently in absolute.go.
func (n *Node) isNoneOrAbsolute() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.display == DisplayNone || n.positionType == PositionAbsolute
}

// outerIntrinsic maps a child's physical intrinsic size (w, h) plus its
// margins (auto treated as 0 for this purpose) onto the parent's main and
// cross axes.
func (ax axisView) outerIntrinsic(c *Node, w, h float64) (mainOuter, crossOuter float64) {
	c.mu.RLock()
	mt, mr, mb, ml := c.marginTop, c.marginRight, c.marginBottom, c.marginLeft
	c.mu.RUnlock()

	marginX := mr.Numeric(0, false) + ml.Numeric(0, false)
	marginY := mt.Numeric(0, false) + mb.Numeric(0, false)

	if ax.mainHorizontal {
		return w + marginX, h + marginY
	}
	return h + marginY, w + marginX
}
