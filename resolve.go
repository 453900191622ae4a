package flexkit

import "math"

type flexFreezeState struct {
	frozen bool
	target float64
}

// resolveFlexibleLengths implements CSS Flexbox's "Resolving Flexible
// Lengths" (spec.md §4.3): distribute a line's free space among its items
// by flex-grow or flex-shrink, iterating with item freezing whenever a
// distribution round would violate an item's min/max main size, until
// every item is frozen. Sets fi.resolvedMain on every item in line.
//
// When the container's main size is indefinite there is no free space to
// distribute against (Σ hypothetical already IS the content size), so
// every item simply keeps its hypothetical main size.
func resolveFlexibleLengths(line *flexLine, ax axisView, availableMain float64, availableMainDefinite bool, mainGapTotal float64, containerMainBasis float64, containerMainDefinite bool, containerCrossBasis float64, containerCrossDefinite bool) {
	items := line.items
	if len(items) == 0 {
		return
	}
	if !availableMainDefinite {
		for _, it := range items {
			it.resolvedMain = it.hypotheticalMain
		}
		return
	}

	availableForItems := availableMain - mainGapTotal

	sumOuterHypothetical := 0.0
	for _, it := range items {
		sumOuterHypothetical += it.outerHypotheticalMain()
	}
	growing := sumOuterHypothetical < availableForItems
	initialFreeSpace := availableForItems - sumOuterHypothetical

	state := make([]flexFreezeState, len(items))
	for i, it := range items {
		factor := it.node.flexGrow
		if !growing {
			factor = it.node.flexShrink
		}
		violatesDirection := (growing && it.flexBase > it.hypotheticalMain) || (!growing && it.flexBase < it.hypotheticalMain)
		if factor == 0 || violatesDirection {
			state[i] = flexFreezeState{frozen: true, target: it.hypotheticalMain}
		} else {
			state[i] = flexFreezeState{target: it.flexBase}
		}
	}

	for {
		allFrozen := true
		for i := range state {
			if !state[i].frozen {
				allFrozen = false
				break
			}
		}
		if allFrozen {
			break
		}

		sumTargets := 0.0
		sumGrowFactor, sumShrinkScaled := 0.0, 0.0
		for i, it := range items {
			main := state[i].target
			if !state[i].frozen {
				main = it.flexBase
			}
			sumTargets += main + marginPairSum(it.marginMainStart.asValue(), it.marginMainEnd.asValue(), 0, false)
			if state[i].frozen {
				continue
			}
			sumGrowFactor += it.node.flexGrow
			sumShrinkScaled += it.node.flexShrink * it.flexBase
		}
		remaining := availableForItems - sumTargets

		if growing && sumGrowFactor < 1 && sumGrowFactor > 0 {
			scaled := initialFreeSpace * sumGrowFactor
			if math.Abs(scaled) < math.Abs(remaining) {
				remaining = scaled
			}
		}

		unclamped := make([]float64, len(items))
		for i, it := range items {
			if state[i].frozen {
				unclamped[i] = state[i].target
				continue
			}
			if remaining == 0 {
				unclamped[i] = it.flexBase
			} else if growing {
				if sumGrowFactor <= 0 {
					unclamped[i] = it.flexBase
				} else {
					unclamped[i] = it.flexBase + remaining*(it.node.flexGrow/sumGrowFactor)
				}
			} else {
				if sumShrinkScaled <= 0 {
					unclamped[i] = it.flexBase
				} else {
					scaled := it.node.flexShrink * it.flexBase
					unclamped[i] = it.flexBase - math.Abs(remaining)*(scaled/sumShrinkScaled)
				}
			}
		}

		totalViolation := 0.0
		violation := make([]float64, len(items))
		for i, it := range items {
			if state[i].frozen {
				continue
			}
			clamped := clampMainAxis(it.node, ax, unclamped[i], containerMainBasis, containerMainDefinite, containerCrossBasis, containerCrossDefinite)
			violation[i] = clamped - unclamped[i]
			totalViolation += violation[i]
		}

		switch {
		case totalViolation == 0:
			for i := range items {
				if !state[i].frozen {
					state[i] = flexFreezeState{frozen: true, target: unclamped[i]}
				}
			}
		case totalViolation > 0:
			for i := range items {
				if state[i].frozen {
					continue
				}
				if violation[i] > 0 {
					state[i] = flexFreezeState{frozen: true, target: unclamped[i] + violation[i]}
				} else {
					state[i].target = unclamped[i]
				}
			}
		default:
			for i := range items {
				if state[i].frozen {
					continue
				}
				if violation[i] < 0 {
					state[i] = flexFreezeState{frozen: true, target: unclamped[i] + violation[i]}
				} else {
					state[i].target = unclamped[i]
				}
			}
		}
	}

	for i, it := range items {
		it.resolvedMain = maxf(0, state[i].target)
	}
}

// asValue converts a resolved mainMargin back into a definite Value for
// reuse by marginPairSum; auto margins contribute 0 at this stage (their
// distribution happens in mainaxis.go, after resolution).
func (m mainMargin) asValue() Value {
	if m.auto {
		return Point(0)
	}
	return Point(m.value)
}
