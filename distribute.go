package flexkit

// resolveAlignContentKeyword maps the Box Alignment L3 physical/logical
// keywords align-content shares with justify-content onto flex-start/
// flex-end (spec.md §4.6). "normal" and "stretch" are handled by the
// caller, since for align-content both mean stretch rather than
// flex-start (the same stretch outcome, reached via two distinct
// keywords: "normal" is the default, "stretch" an explicit request).
func resolveAlignContentKeyword(ac AlignContent, ax axisView) AlignContent {
	switch ac {
	case JustifyStart:
		return JustifyFlexStart
	case JustifyEnd:
		return JustifyFlexEnd
	case JustifyLeft:
		return JustifyFlexStart
	case JustifyRight:
		return JustifyFlexEnd
	default:
		return ac
	}
}

// distributeLines finalizes every line's cross size and cross-axis
// position (spec.md §4.6): a single line always takes the container's
// full definite cross size; multiple lines size to their content, then
// align-content distributes any remaining space (including its default,
// "normal", which stretches lines to fill the container) or positions
// the lines per its keyword. wrap-reverse flips the whole stack, per
// spec.md §4.2. Returns the total cross size consumed by content, which
// callers use as the container's own auto cross size when indefinite.
func distributeLines(lines []*flexLine, ax axisView, alignContent AlignContent, safety OverflowSafety, containerCrossSize float64, containerCrossDefinite bool, crossGap float64, wrap FlexWrap) float64 {
	if len(lines) == 0 {
		return 0
	}

	for _, l := range lines {
		maxCross := 0.0
		for _, fi := range l.items {
			outer := fi.crossSize
			if !fi.marginCrossStart.auto {
				outer += fi.marginCrossStart.value
			}
			if !fi.marginCrossEnd.auto {
				outer += fi.marginCrossEnd.value
			}
			maxCross = maxf(maxCross, outer)
		}
		l.crossSize = maxCross
	}

	if len(lines) == 1 && containerCrossDefinite {
		lines[0].crossSize = containerCrossSize
		lines[0].crossPos = 0
		return containerCrossSize
	}

	naturalTotal := 0.0
	for _, l := range lines {
		naturalTotal += l.crossSize
	}
	if len(lines) > 1 {
		naturalTotal += crossGap * float64(len(lines)-1)
	}

	stretch := alignContent == JustifyNormal || alignContent == JustifyStretch
	if stretch && containerCrossDefinite {
		extra := containerCrossSize - naturalTotal
		if extra > 0 {
			share := extra / float64(len(lines))
			for _, l := range lines {
				l.crossSize += share
			}
			naturalTotal = containerCrossSize
		}
	}

	effectiveCross := naturalTotal
	if containerCrossDefinite {
		effectiveCross = containerCrossSize
	}
	freeSpace := 0.0
	if containerCrossDefinite {
		freeSpace = containerCrossSize - naturalTotal
	}

	resolved := resolveAlignContentKeyword(alignContent, ax)
	if freeSpace < 0 && safety == OverflowSafe {
		resolved = JustifyFlexStart
	}

	n := len(lines)
	offset := 0.0
	between := crossGap
	if !stretch || !containerCrossDefinite {
		switch resolved {
		case JustifyFlexStart, JustifyNormal, JustifyStretch:
			offset = 0
		case JustifyFlexEnd:
			offset = freeSpace
		case JustifyCenter:
			offset = freeSpace / 2
		case JustifySpaceBetween:
			if n > 1 {
				between = crossGap + freeSpace/float64(n-1)
			}
		case JustifySpaceAround:
			perLine := freeSpace / float64(n)
			offset = perLine / 2
			between = crossGap + perLine
		case JustifySpaceEvenly:
			perGap := freeSpace / float64(n+1)
			offset = perGap
			between = crossGap + perGap
		}
	}

	pos := offset
	for _, l := range lines {
		l.crossPos = pos
		pos += l.crossSize + between
	}

	if wrap == FlexWrapReverse {
		for _, l := range lines {
			l.crossPos = effectiveCross - l.crossPos - l.crossSize
		}
	}

	return effectiveCross
}
