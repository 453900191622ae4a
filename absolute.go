package flexkit

import "math"

// absAxisResult is one axis's resolved position (relative to the
// containing block's origin, in the same coordinate space as
// containingStart) and size for an absolutely positioned node.
type absAxisResult struct {
	pos, size float64
}

func nonAutoMargin(v float64, auto bool) float64 {
	if auto {
		return 0
	}
	return v
}

// clampToMinMax resolves minVal/maxVal against basis and clamps v into
// the result, same rule as clampMainAxis/clampCrossAxis but without the
// automatic-minimum special case, which does not apply outside normal
// flow (spec.md §5.2).
func clampToMinMax(v float64, minVal, maxVal Value, basis float64) float64 {
	lo := 0.0
	if !minVal.IsAuto() {
		if r, ok := minVal.Resolve(basis, true); ok {
			lo = maxf(0, r)
		}
	}
	hi := math.Inf(1)
	if r, ok := maxVal.Resolve(basis, true); ok {
		hi = r
	}
	if hi < lo {
		hi = lo
	}
	return clamp(v, lo, hi)
}

// justifyContentToStaticAlign stands in for a justify-items property this
// engine does not have: it collapses the container's justify-content onto
// the same start/center/end space staticSelfKeyword uses, so an absolutely
// positioned child with justify-self:auto still gets a sensible main-axis
// static position instead of always flush-start.
func justifyContentToStaticAlign(jc JustifyContent) AlignItems {
	switch resolveAlignContentKeyword(jc, axisView{}) {
	case JustifyCenter:
		return AlignCenter
	case JustifyFlexEnd:
		return AlignFlexEnd
	default:
		return AlignFlexStart
	}
}

// staticSelfKeyword collapses a resolved AlignItems value onto the three
// positions the static-position fallback distinguishes (spec.md §4.11):
// flex-start is the catch-all for every keyword that isn't a clear centre
// or end (stretch/baseline/normal included, since there is no box to
// stretch into and no line to baseline-align against outside normal flow).
func staticSelfKeyword(a AlignItems) AlignItems {
	switch a {
	case AlignCenter:
		return AlignCenter
	case AlignFlexEnd, AlignEnd, AlignSelfEnd, AlignRight:
		return AlignFlexEnd
	default:
		return AlignFlexStart
	}
}

// resolveAbsoluteAxis implements spec.md §5.2's inset-resolution table for
// one axis of an absolutely positioned node: both insets definite stretch
// (or centre/distribute auto margins) the box between them; one inset
// definite anchors that edge and sizes from the node's own property or
// content; neither inset definite falls back to the static position,
// placed within the containing block per static (spec.md §4.11's C11:
// justify-self/align-self, defaulting to flex-start).
func resolveAbsoluteAxis(sizeVal, minVal, maxVal, marginStart, marginEnd, insetStart, insetEnd Value, containingStart, containingSize float64, staticAlign AlignItems, contentSize func() float64) absAxisResult {
	startV, startDef := insetStart.Resolve(containingSize, true)
	endV, endDef := insetEnd.Resolve(containingSize, true)

	autoML := marginStart.IsAuto()
	autoMR := marginEnd.IsAuto()
	mlv := marginStart.Numeric(containingSize, true)
	mrv := marginEnd.Numeric(containingSize, true)

	size, explicitSize := sizeVal.Resolve(containingSize, true)

	var pos float64
	switch {
	case startDef && endDef:
		avail := containingSize - startV - endV
		if !explicitSize {
			size = avail - nonAutoMargin(mlv, autoML) - nonAutoMargin(mrv, autoMR)
		}
		size = clampToMinMax(size, minVal, maxVal, containingSize)
		remaining := avail - size - nonAutoMargin(mlv, autoML) - nonAutoMargin(mrv, autoMR)
		switch {
		case autoML && autoMR:
			mlv, mrv = maxf(0, remaining/2), maxf(0, remaining/2)
		case autoML:
			mlv = maxf(0, remaining)
		case autoMR:
			mrv = maxf(0, remaining)
		}
		pos = containingStart + startV + mlv
	case startDef:
		if !explicitSize {
			size = contentSize()
		}
		size = clampToMinMax(size, minVal, maxVal, containingSize)
		pos = containingStart + startV + mlv
	case endDef:
		if !explicitSize {
			size = contentSize()
		}
		size = clampToMinMax(size, minVal, maxVal, containingSize)
		pos = containingStart + containingSize - endV - mrv - size
	default:
		if !explicitSize {
			size = contentSize()
		}
		size = clampToMinMax(size, minVal, maxVal, containingSize)
		avail := maxf(0, containingSize-size-nonAutoMargin(mlv, autoML)-nonAutoMargin(mrv, autoMR))
		switch staticSelfKeyword(staticAlign) {
		case AlignCenter:
			pos = containingStart + nonAutoMargin(mlv, autoML) + avail/2
		case AlignFlexEnd:
			pos = containingStart + containingSize - size - nonAutoMargin(mrv, autoMR)
		default:
			pos = containingStart + mlv
		}
	}
	return absAxisResult{pos: pos, size: maxf(0, size)}
}

// layoutAbsoluteChild positions and sizes an absolutely positioned node
// against its containing block (the nearest flex container's content
// box, per spec.md §4.11 — this engine does not track a separate
// positioned-ancestor chain beyond the immediate flex container).
// containerJustifyContent/containerAlignItems feed the static-position
// fallback when the child leaves justify-self/align-self at auto (there is
// no justify-items property here, so justify-content collapsed onto
// start/center/end stands in for it).
func layoutAbsoluteChild(child *Node, containingLeft, containingTop, containingW, containingH float64, containerJustifyContent JustifyContent, containerAlignItems AlignItems) {
	xAlign := justifyContentToStaticAlign(containerJustifyContent)
	if child.justifySelf != JustifySelfAuto {
		xAlign = staticSelfKeyword(AlignItems(child.justifySelf))
	}
	yAlign := resolveAlignForItem(child.alignSelf, containerAlignItems, axisView{})

	rx := resolveAbsoluteAxis(child.width, child.minWidth, child.maxWidth, child.marginLeft, child.marginRight, child.insetLeft, child.insetRight, containingLeft, containingW, xAlign, func() float64 {
		cw, _ := child.measureIntrinsic()
		return cw
	})
	ry := resolveAbsoluteAxis(child.height, child.minHeight, child.maxHeight, child.marginTop, child.marginBottom, child.insetTop, child.insetBottom, containingTop, containingH, yAlign, func() float64 {
		_, ch := child.measureIntrinsic()
		return ch
	})

	child.mu.Lock()
	child.layout.left = rx.pos
	child.layout.top = ry.pos
	child.layout.width = rx.size
	child.layout.height = ry.size
	child.mu.Unlock()
}
