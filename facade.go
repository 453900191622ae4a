package flexkit

import (
	"math"
	"sort"
)

// --- validation helpers --------------------------------------------------

func validateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errInvalidValue(field, v)
	}
	return nil
}

func validateNonNegative(field string, v float64) error {
	if err := validateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return errInvalidValue(field, v)
	}
	return nil
}

// --- generic Value-field setter helper -----------------------------------

// setField writes v into *field under n's lock, reporting whether it
// changed, and propagates dirty unless a batch has suspended it. This is
// the engine behind every simple typed setter in spec.md §4.2: no-op on
// structural equality, otherwise write + markDirty.
func (n *Node) setField(field *Value, v Value) *Node {
	n.mu.Lock()
	changed := *field != v
	if changed {
		*field = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

// Width/Height and box model -----------------------------------------------

func (n *Node) SetWidth(v Value) *Node       { return n.setField(&n.width, v) }
func (n *Node) SetHeight(v Value) *Node      { return n.setField(&n.height, v) }
func (n *Node) SetMinWidth(v Value) *Node    { return n.setField(&n.minWidth, v) }
func (n *Node) SetMinHeight(v Value) *Node   { return n.setField(&n.minHeight, v) }
func (n *Node) SetMaxWidth(v Value) *Node    { return n.setField(&n.maxWidth, v) }
func (n *Node) SetMaxHeight(v Value) *Node   { return n.setField(&n.maxHeight, v) }
func (n *Node) SetFlexBasis(v Value) *Node   { return n.setField(&n.flexBasis, v) }

func (n *Node) SetMarginTop(v Value) *Node    { return n.setField(&n.marginTop, v) }
func (n *Node) SetMarginRight(v Value) *Node  { return n.setField(&n.marginRight, v) }
func (n *Node) SetMarginBottom(v Value) *Node { return n.setField(&n.marginBottom, v) }
func (n *Node) SetMarginLeft(v Value) *Node   { return n.setField(&n.marginLeft, v) }

// SetMargin is the shorthand form: sets all four sides at once.
func (n *Node) SetMargin(v Value) *Node {
	return n.Batch(func(n *Node) {
		n.SetMarginTop(v)
		n.SetMarginRight(v)
		n.SetMarginBottom(v)
		n.SetMarginLeft(v)
	})
}

func (n *Node) SetPaddingTop(v Value) *Node    { return n.setField(&n.paddingTop, v) }
func (n *Node) SetPaddingRight(v Value) *Node  { return n.setField(&n.paddingRight, v) }
func (n *Node) SetPaddingBottom(v Value) *Node { return n.setField(&n.paddingBottom, v) }
func (n *Node) SetPaddingLeft(v Value) *Node   { return n.setField(&n.paddingLeft, v) }

func (n *Node) SetPadding(v Value) *Node {
	return n.Batch(func(n *Node) {
		n.SetPaddingTop(v)
		n.SetPaddingRight(v)
		n.SetPaddingBottom(v)
		n.SetPaddingLeft(v)
	})
}

func (n *Node) SetBorderTop(v Value) *Node    { return n.setField(&n.borderTop, v) }
func (n *Node) SetBorderRight(v Value) *Node  { return n.setField(&n.borderRight, v) }
func (n *Node) SetBorderBottom(v Value) *Node { return n.setField(&n.borderBottom, v) }
func (n *Node) SetBorderLeft(v Value) *Node   { return n.setField(&n.borderLeft, v) }

func (n *Node) SetTop(v Value) *Node    { return n.setField(&n.insetTop, v) }
func (n *Node) SetRight(v Value) *Node  { return n.setField(&n.insetRight, v) }
func (n *Node) SetBottom(v Value) *Node { return n.setField(&n.insetBottom, v) }
func (n *Node) SetLeft(v Value) *Node   { return n.setField(&n.insetLeft, v) }

func (n *Node) SetRowGap(v Value) *Node    { return n.setField(&n.rowGap, v) }
func (n *Node) SetColumnGap(v Value) *Node { return n.setField(&n.columnGap, v) }

// SetGap is the shorthand form: sets both row and column gap.
func (n *Node) SetGap(v Value) *Node {
	return n.Batch(func(n *Node) {
		n.SetRowGap(v)
		n.SetColumnGap(v)
	})
}

// --- enum setters ----------------------------------------------------------

func (n *Node) SetFlexDirection(v FlexDirection) *Node {
	n.mu.Lock()
	changed := n.flexDirection != v
	if changed {
		n.flexDirection = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetFlexWrap(v FlexWrap) *Node {
	n.mu.Lock()
	changed := n.flexWrap != v
	if changed {
		n.flexWrap = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetJustifyContent(v JustifyContent) *Node {
	n.mu.Lock()
	changed := n.justifyContent != v
	if changed {
		n.justifyContent = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignItems(v AlignItems) *Node {
	n.mu.Lock()
	changed := n.alignItems != v
	if changed {
		n.alignItems = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignSelf(v AlignSelf) *Node {
	n.mu.Lock()
	changed := n.alignSelf != v
	if changed {
		n.alignSelf = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignContent(v AlignContent) *Node {
	n.mu.Lock()
	changed := n.alignContent != v
	if changed {
		n.alignContent = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetJustifySelf(v JustifySelf) *Node {
	n.mu.Lock()
	changed := n.justifySelf != v
	if changed {
		n.justifySelf = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignItemsSafety(v OverflowSafety) *Node {
	n.mu.Lock()
	changed := n.alignItemsSafety != v
	if changed {
		n.alignItemsSafety = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignSelfSafety(v OverflowSafety) *Node {
	n.mu.Lock()
	changed := n.alignSelfSafety != v
	if changed {
		n.alignSelfSafety = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetAlignContentSafety(v OverflowSafety) *Node {
	n.mu.Lock()
	changed := n.alignContentSafety != v
	if changed {
		n.alignContentSafety = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetPositionType(v PositionType) *Node {
	n.mu.Lock()
	changed := n.positionType != v
	if changed {
		n.positionType = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetDisplay(v Display) *Node {
	n.mu.Lock()
	changed := n.display != v
	if changed {
		n.display = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetDirection(v Direction) *Node {
	n.mu.Lock()
	changed := n.direction != v
	if changed {
		n.direction = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

func (n *Node) SetWritingMode(v WritingMode) *Node {
	n.mu.Lock()
	changed := n.writingMode != v
	if changed {
		n.writingMode = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

// --- validated numeric setters ---------------------------------------------

// SetFlexGrow sets the flex-grow factor. Fails with InvalidValue if v is
// non-finite or negative (spec.md §3 invariant 5 / §7).
func (n *Node) SetFlexGrow(v float64) (*Node, error) {
	if err := validateNonNegative("flexGrow", v); err != nil {
		return n, err
	}
	return n.setField64(&n.flexGrow, v), nil
}

// SetFlexShrink sets the flex-shrink factor. Fails with InvalidValue if v
// is non-finite or negative.
func (n *Node) SetFlexShrink(v float64) (*Node, error) {
	if err := validateNonNegative("flexShrink", v); err != nil {
		return n, err
	}
	return n.setField64(&n.flexShrink, v), nil
}

func (n *Node) setField64(field *float64, v float64) *Node {
	n.mu.Lock()
	changed := *field != v
	if changed {
		*field = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

// SetOrder sets the item's paint/layout order. order is integer-valued and
// always finite, so this form never fails.
func (n *Node) SetOrder(v int) *Node {
	n.mu.Lock()
	changed := n.order != v
	if changed {
		n.order = v
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

// SetOrderFromFloat rounds v to the nearest integer and sets order,
// rejecting NaN/Inf inputs (spec.md §3 invariant 5). Used by property-bag
// decoding, where order arrives as a generic numeric value.
func (n *Node) SetOrderFromFloat(v float64) (*Node, error) {
	if err := validateFinite("order", v); err != nil {
		return n, err
	}
	return n.SetOrder(int(math.Round(v))), nil
}

// SetAspectRatio sets the preferred width/height ratio (spec.md §4.5).
// Fails with InvalidValue if r is non-finite or <= 0.
func (n *Node) SetAspectRatio(r float64) (*Node, error) {
	if err := validateFinite("aspectRatio", r); err != nil {
		return n, err
	}
	if r <= 0 {
		return n, errInvalidValue("aspectRatio", r)
	}
	n.mu.Lock()
	changed := !n.hasAspectRatio || n.aspectRatio != r
	if changed {
		n.aspectRatio = r
		n.hasAspectRatio = true
	}
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n, nil
}

// ClearAspectRatio removes a previously-set aspect ratio.
func (n *Node) ClearAspectRatio() *Node {
	n.mu.Lock()
	changed := n.hasAspectRatio
	n.hasAspectRatio = false
	n.aspectRatio = 0
	suspend := n.suspendDirty
	n.mu.Unlock()
	if changed && !suspend {
		n.markDirty()
	}
	return n
}

// --- callbacks --------------------------------------------------------------

// SetMeasureFunc attaches the leaf content-measurement callback (spec.md
// §3/§6). Unlike the style setters, this does not mark n dirty — it only
// invalidates the intrinsic-size cache chain, since that is the only thing
// a measureFunc affects (spec.md §4.3).
func (n *Node) SetMeasureFunc(f MeasureFunc) *Node {
	n.mu.Lock()
	bothNil := n.measureFunc == nil && f == nil
	n.measureFunc = f
	n.mu.Unlock()
	if !bothNil {
		n.invalidateIntrinsicSize()
	}
	return n
}

// SetBaselineFunc attaches the baseline callback; invalidates the baseline
// cache chain only.
func (n *Node) SetBaselineFunc(f BaselineFunc) *Node {
	n.mu.Lock()
	bothNil := n.baselineFunc == nil && f == nil
	n.baselineFunc = f
	n.mu.Unlock()
	if !bothNil {
		n.invalidateBaseline()
	}
	return n
}

// --- tree mutation ----------------------------------------------------------

// isAncestorOf reports whether n is an ancestor of other (walking other's
// parent chain).
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other.Parent(); cur != nil; cur = cur.Parent() {
		if cur == n {
			return true
		}
	}
	return false
}

// AppendChild detaches child from any prior parent, then attaches it as
// n's last child and dirties n. Returns TreeMisuse if child is n itself or
// an ancestor of n, which would otherwise create a cycle (spec.md §7/§9.4
// — the teacher silently detaches without this check).
func (n *Node) AppendChild(child *Node) error {
	if child == nil {
		return nil
	}
	if child == n {
		return errTreeMisuse(n, child, "a node cannot be appended as its own child")
	}
	if child.isAncestorOf(n) {
		return errTreeMisuse(n, child, "child is an ancestor of parent; appending would create a cycle")
	}

	if oldParent := child.Parent(); oldParent != nil {
		oldParent.RemoveChild(child)
	}

	n.mu.Lock()
	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	n.markDirty()
	return nil
}

// RemoveChild detaches child from n's children list, if present, and
// dirties n. Returns false if child was not a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	n.mu.Lock()
	idx := -1
	for i, c := range n.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx == -1 {
		n.mu.Unlock()
		return false
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = nil
	child.mu.Unlock()

	n.markDirty()
	return true
}

// --- getters ----------------------------------------------------------------

func (n *Node) GetComputedLeft() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.left
}

func (n *Node) GetComputedTop() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.top
}

func (n *Node) GetComputedWidth() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.width
}

func (n *Node) GetComputedHeight() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.height
}

// GetBaseline is an alias for GetFirstBaseline, the conventional single
// "the" baseline of a box.
func (n *Node) GetBaseline() (float64, bool) { return n.GetFirstBaseline() }

func (n *Node) GetFirstBaseline() (float64, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.firstBaseline, n.baseline.has
}

func (n *Node) GetLastBaseline() (float64, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.layout.lastBaseline, n.baseline.has
}

// IsDirty reports whether n still needs a layout pass.
func (n *Node) IsDirty() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.isDirty
}

// --- bulk property-keyed style() / set() ------------------------------------

// propKeyPriority orders keys for deterministic batch application (Open
// Question 1 in spec.md §9: sizes, then flex properties, then spacing,
// then insets, then everything else).
var propKeyPriority = map[string]int{
	"width": 0, "height": 0, "minWidth": 0, "minHeight": 0,
	"maxWidth": 0, "maxHeight": 0, "flexBasis": 0, "aspectRatio": 0,

	"flexGrow": 1, "flexShrink": 1, "flexDirection": 1, "flexWrap": 1,
	"order": 1, "justifyContent": 1, "alignItems": 1, "alignSelf": 1,
	"alignContent": 1, "justifySelf": 1, "alignItemsSafety": 1, "alignSelfSafety": 1,
	"alignContentSafety": 1, "display": 1, "positionType": 1,
	"direction": 1, "writingMode": 1,

	"margin": 2, "marginTop": 2, "marginRight": 2, "marginBottom": 2, "marginLeft": 2,
	"padding": 2, "paddingTop": 2, "paddingRight": 2, "paddingBottom": 2, "paddingLeft": 2,
	"borderTop": 2, "borderRight": 2, "borderBottom": 2, "borderLeft": 2,
	"rowGap": 2, "columnGap": 2, "gap": 2,

	"top": 3, "right": 3, "bottom": 3, "left": 3,
}

// orderedKeys sorts a property bag's keys by propKeyPriority, falling back
// to lexicographic order within a priority tier for determinism.
func orderedKeys(props map[string]any) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := propKeyPriority[keys[i]], propKeyPriority[keys[j]]
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Style applies a bag of properties atomically: every key must be
// recognised and every value must parse/validate, or none of them are
// applied (spec.md §7 — UnknownProperty/InvalidValue leave the node
// unchanged). Keys are applied in propKeyPriority order within one Batch,
// so at most one markDirty propagation results.
func (n *Node) Style(props map[string]any) error {
	keys := orderedKeys(props)

	// First pass: validate every key is recognised and every value parses,
	// without mutating anything, so a failure leaves n untouched.
	for _, k := range keys {
		if _, ok := propKeyPriority[k]; !ok {
			return errUnknownProperty(k)
		}
		if err := n.validateProp(k, props[k]); err != nil {
			return err
		}
	}

	var applyErr error
	n.Batch(func(n *Node) {
		for _, k := range keys {
			if err := n.applyProp(k, props[k]); err != nil {
				applyErr = err
				return
			}
		}
	})
	return applyErr
}

// Set applies a single key/value pair through the same path as Style.
func (n *Node) Set(key string, value any) error {
	return n.Style(map[string]any{key: value})
}
