package flexkit

import "sort"

// mainMargin is a flex item's resolved margin on the main axis: either a
// definite number, or "auto", which the length-resolution and
// justify-content passes treat specially (spec.md §4.1/§4.6).
type mainMargin struct {
	auto  bool
	value float64
}

func resolveMainMargin(v Value, basis float64, basisDefinite bool) mainMargin {
	if v.IsAuto() {
		return mainMargin{auto: true}
	}
	n, _ := v.Resolve(basis, basisDefinite)
	return mainMargin{value: n}
}

// flexItem is the per-child staging record threaded through C5-C10: flex
// base size, clamped hypothetical main size, margins, and (after
// resolve.go runs) the final resolved main size.
type flexItem struct {
	node *Node

	originalIndex int

	flexBase         float64
	hypotheticalMain float64

	marginMainStart mainMargin
	marginMainEnd   mainMargin

	marginCrossStart mainMargin
	marginCrossEnd   mainMargin

	// resolvedMain is filled in by resolve.go; until then it equals
	// hypotheticalMain.
	resolvedMain float64

	// crossSize is filled in by crossaxis.go.
	crossSize float64

	// position is filled in by mainaxis.go/crossaxis.go: the main/cross
	// offset of the item's border box (past its start margin), flow-relative.
	mainPos  float64
	crossPos float64
}

func (fi *flexItem) outerHypotheticalMain() float64 {
	s := fi.hypotheticalMain
	if !fi.marginMainStart.auto {
		s += fi.marginMainStart.value
	}
	if !fi.marginMainEnd.auto {
		s += fi.marginMainEnd.value
	}
	return s
}

// flexLine is a run of items that share one line on the cross axis.
type flexLine struct {
	items []*flexItem

	// crossSize is the line's cross size after C9/C10 run.
	crossSize float64
	// crossPos is the line's cross-axis starting offset, set by distribute.go.
	crossPos float64
}

// collectFlexItems gathers n's normal-flow children (excluding
// display:none and absolutely-positioned items), computes each one's flex
// base size and clamped hypothetical main size, and returns them ordered
// by the `order` property with document order as the tiebreak (spec.md
// §4's item-ordering rule).
func collectFlexItems(n *Node, ax axisView, containerMainBasis float64, containerMainDefinite bool, containerCrossBasis float64, containerCrossDefinite bool) []*flexItem {
	children := n.childSnapshot()
	items := make([]*flexItem, 0, len(children))
	for i, c := range children {
		if c.isNoneOrAbsolute() {
			continue
		}
		c.mu.RLock()
		mMainStart, mMainEnd := ax.mainMarginStart(c), ax.mainMarginEnd(c)
		mCrossStart, mCrossEnd := ax.crossMarginStart(c), ax.crossMarginEnd(c)
		c.mu.RUnlock()

		base := flexBaseSize(c, ax, containerMainBasis, containerMainDefinite, containerCrossBasis, containerCrossDefinite)
		hypothetical := clampMainAxis(c, ax, base, containerMainBasis, containerMainDefinite, containerCrossBasis, containerCrossDefinite)

		items = append(items, &flexItem{
			node:             c,
			originalIndex:    i,
			flexBase:         base,
			hypotheticalMain: hypothetical,
			resolvedMain:     hypothetical,
			marginMainStart:  resolveMainMargin(mMainStart, containerMainBasis, containerMainDefinite),
			marginMainEnd:    resolveMainMargin(mMainEnd, containerMainBasis, containerMainDefinite),
			marginCrossStart: resolveMainMargin(mCrossStart, containerCrossBasis, containerCrossDefinite),
			marginCrossEnd:   resolveMainMargin(mCrossEnd, containerCrossBasis, containerCrossDefinite),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := items[i].node.order, items[j].node.order
		if oi != oj {
			return oi < oj
		}
		return items[i].originalIndex < items[j].originalIndex
	})
	return items
}

// partitionLines splits items into flex lines (spec.md §4.2). With
// flexWrap nowrap, or an indefinite available main size, every item goes
// onto a single line: wrapping requires a definite space to wrap against.
func partitionLines(items []*flexItem, wrap FlexWrap, availableMain float64, availableMainDefinite bool, mainGap float64) []*flexLine {
	if wrap == FlexNoWrap || !availableMainDefinite || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	var current []*flexItem
	var currentMain float64

	for _, it := range items {
		itemMain := it.outerHypotheticalMain()
		addGap := 0.0
		if len(current) > 0 {
			addGap = mainGap
		}
		if len(current) > 0 && currentMain+addGap+itemMain > availableMain {
			lines = append(lines, &flexLine{items: current})
			current = nil
			currentMain = 0
			addGap = 0
		}
		current = append(current, it)
		currentMain += addGap + itemMain
	}
	if len(current) > 0 {
		lines = append(lines, &flexLine{items: current})
	}
	return lines
}
