package flexkit

// resolveJustify maps the Box Alignment L3 keyword extensions
// (start/end/normal/left/right) onto the flex-start/flex-end/center/
// space-* vocabulary the positioner below understands (spec.md §4.4).
// left/right are physical: on a horizontal main axis they become
// flex-start or flex-end depending on whether the axis is reversed; on a
// vertical main axis they have no meaning and fall back to start/end.
func resolveJustify(j JustifyContent, ax axisView) JustifyContent {
	switch j {
	case JustifyStart, JustifyNormal:
		return JustifyFlexStart
	case JustifyEnd:
		return JustifyFlexEnd
	case JustifyLeft:
		if !ax.mainHorizontal {
			return JustifyFlexStart
		}
		if ax.mainReversed {
			return JustifyFlexEnd
		}
		return JustifyFlexStart
	case JustifyRight:
		if !ax.mainHorizontal {
			return JustifyFlexEnd
		}
		if ax.mainReversed {
			return JustifyFlexStart
		}
		return JustifyFlexEnd
	default:
		return j
	}
}

// positionMainAxis assigns fi.mainPos for every item in line, measured
// from the content box's main-start edge (spec.md §4.4). Auto margins
// absorb all positive free space and suppress justify-content entirely,
// per CSS Flexbox §8.1; otherwise free space is distributed per the
// resolved justify-content keyword, honouring its overflow-safety.
func positionMainAxis(line *flexLine, ax axisView, justify JustifyContent, safety OverflowSafety, availableMain float64, availableMainDefinite bool, mainGap float64) {
	items := line.items
	n := len(items)
	if n == 0 {
		return
	}

	used := 0.0
	autoCount := 0
	for _, it := range items {
		used += it.resolvedMain
		if it.marginMainStart.auto {
			autoCount++
		} else {
			used += it.marginMainStart.value
		}
		if it.marginMainEnd.auto {
			autoCount++
		} else {
			used += it.marginMainEnd.value
		}
	}
	if n > 1 {
		used += mainGap * float64(n-1)
	}

	freeSpace := 0.0
	if availableMainDefinite {
		freeSpace = availableMain - used
	}

	if autoCount > 0 && freeSpace > 0 {
		share := freeSpace / float64(autoCount)
		pos := 0.0
		for _, it := range items {
			if it.marginMainStart.auto {
				pos += share
			} else {
				pos += it.marginMainStart.value
			}
			it.mainPos = pos
			pos += it.resolvedMain
			if it.marginMainEnd.auto {
				pos += share
			} else {
				pos += it.marginMainEnd.value
			}
			pos += mainGap
		}
		return
	}

	j := resolveJustify(justify, ax)
	if freeSpace < 0 && safety == OverflowSafe {
		j = JustifyFlexStart
	}

	offset := 0.0
	between := mainGap
	switch j {
	case JustifyFlexStart:
		offset = 0
	case JustifyFlexEnd:
		offset = freeSpace
	case JustifyCenter:
		offset = freeSpace / 2
	case JustifySpaceBetween:
		if n > 1 {
			between = mainGap + freeSpace/float64(n-1)
		}
	case JustifySpaceAround:
		perItem := freeSpace / float64(n)
		offset = perItem / 2
		between = mainGap + perItem
	case JustifySpaceEvenly:
		perGap := freeSpace / float64(n+1)
		offset = perGap
		between = mainGap + perGap
	default:
		offset = 0
	}

	pos := offset
	for _, it := range items {
		mStart := 0.0
		if !it.marginMainStart.auto {
			mStart = it.marginMainStart.value
		}
		mEnd := 0.0
		if !it.marginMainEnd.auto {
			mEnd = it.marginMainEnd.value
		}
		pos += mStart
		it.mainPos = pos
		pos += it.resolvedMain + mEnd + between
	}
}
