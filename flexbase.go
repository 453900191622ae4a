package flexkit

import "math"

// flexBaseSize computes a flex item's flex base size (spec.md §4.1): the
// hypothetical main size before grow/shrink resolution.
//
//  1. flex-basis is a definite length/percentage -> that, resolved against
//     the container's main size.
//  2. flex-basis is "content", or "auto" with an indefinite main-size
//     property and no usable aspect-ratio transfer -> the item's content
//     size on the main axis (measureIntrinsic, which calls the measureFunc
//     directly where one is attached).
//  3. flex-basis is "auto" and the main-size property is definite -> that.
//  4. flex-basis is "auto", main-size is indefinite, but aspect-ratio and a
//     definite cross size are available -> the cross size transferred
//     through the ratio (spec.md §4.5).
func flexBaseSize(n *Node, ax axisView, containerMainBasis float64, containerMainDefinite bool, containerCrossBasis float64, containerCrossDefinite bool) float64 {
	basis := n.flexBasis
	if basis.Kind == ValuePoint || basis.Kind == ValuePercent {
		if v, ok := basis.Resolve(containerMainBasis, containerMainDefinite); ok {
			return v
		}
	}

	if basis.Kind != ValueContent {
		if mainVal := ax.mainSizeValue(n); mainVal.Kind == ValuePoint || mainVal.Kind == ValuePercent {
			if v, ok := mainVal.Resolve(containerMainBasis, containerMainDefinite); ok {
				return v
			}
		}
		if n.hasAspectRatio {
			if crossVal := ax.crossSizeValue(n); crossVal.IsDefinite() || crossVal.Kind == ValuePercent {
				if crossSize, ok := crossVal.Resolve(containerCrossBasis, containerCrossDefinite); ok {
					return transferThroughAspectRatio(n, ax, crossSize)
				}
			}
		}
	}

	cw, ch := n.measureIntrinsic()
	if ax.mainHorizontal {
		return cw
	}
	return ch
}

// transferThroughAspectRatio converts a definite cross size into the
// corresponding main size using n's aspect ratio (width/height).
func transferThroughAspectRatio(n *Node, ax axisView, crossSize float64) float64 {
	if ax.mainHorizontal {
		return crossSize * n.aspectRatio // main=width, cross=height; width = height*ratio
	}
	return crossSize / n.aspectRatio // main=height, cross=width; height = width/ratio
}

// automaticMinMain implements the CSS Sizing L3 automatic minimum size
// used in place of an explicit min-width/min-height:auto on a flex item:
// the smaller of the item's content size and its flex base size, unless
// the item specifies an aspect ratio and a definite cross size, in which
// case the ratio-transferred size is used instead. This keeps a small
// flex-shrink item from shrinking below what its content needs.
func automaticMinMain(n *Node, ax axisView, flexBase float64, containerCrossBasis float64, containerCrossDefinite bool) float64 {
	if n.hasAspectRatio {
		if crossVal := ax.crossSizeValue(n); crossVal.Kind == ValuePoint || crossVal.Kind == ValuePercent {
			if crossSize, ok := crossVal.Resolve(containerCrossBasis, containerCrossDefinite); ok {
				return minf(transferThroughAspectRatio(n, ax, crossSize), flexBase)
			}
		}
	}
	cw, ch := n.measureIntrinsic()
	content := ch
	if ax.mainHorizontal {
		content = cw
	}
	return minf(content, flexBase)
}

// clampMainAxis resolves n's effective min/max main size and clamps v into
// it, applying the automatic minimum when min-main is auto (spec.md §4.1
// invariant: "flex base size is clamped into [min, max] before use as the
// hypothetical main size").
func clampMainAxis(n *Node, ax axisView, v float64, containerMainBasis float64, containerMainDefinite bool, containerCrossBasis float64, containerCrossDefinite bool) float64 {
	minVal := ax.mainMinValue(n)
	maxVal := ax.mainMaxValue(n)

	lo := 0.0
	if minVal.IsAuto() {
		flexBase := flexBaseSize(n, ax, containerMainBasis, containerMainDefinite, containerCrossBasis, containerCrossDefinite)
		lo = maxf(0, automaticMinMain(n, ax, flexBase, containerCrossBasis, containerCrossDefinite))
	} else if resolved, ok := minVal.Resolve(containerMainBasis, containerMainDefinite); ok {
		lo = maxf(0, resolved)
	}

	hi := math.Inf(1)
	if resolved, ok := maxVal.Resolve(containerMainBasis, containerMainDefinite); ok {
		hi = resolved
	}
	if hi < lo {
		hi = lo
	}
	return clamp(v, lo, hi)
}
