package flexkit

import (
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// NodeID uniquely identifies a Node for the lifetime of a process.
type NodeID uint64

var nextNodeID atomic.Uint64

func newNodeID() NodeID { return NodeID(nextNodeID.Add(1)) }

// MeasureFunc supplies the intrinsic content size of a leaf node. Both
// availW/availH may be +Inf when the corresponding basis is indefinite;
// the returned width/height must be finite and >= 0 (spec.md §6). It must
// not mutate the tree — it may only inspect the node it is attached to and
// the requested available size (spec.md §5).
type MeasureFunc func(n *Node, availW, availH float64) (width, height float64)

// BaselineFunc supplies a node's first-baseline offset from the top of its
// content box, given its resolved width/height. The result is clamped into
// [0, h] by the caller.
type BaselineFunc func(n *Node, w, h float64) float64

// intrinsicCache holds the measurement pass's memoized result for a node.
// Valid only when both hasW and hasH are set (spec.md invariant 3).
type intrinsicCache struct {
	w, h       float64
	hasW, hasH bool
}

// baselineCache holds the memoized first-baseline position for a node.
type baselineCache struct {
	pos float64
	has bool
}

// computedLayout holds a node's resolved output, per spec.md §3.
type computedLayout struct {
	left, top     float64
	width, height float64
	firstBaseline float64
	lastBaseline  float64
	direction     Direction
}

// Node is the core entity of the layout tree: style inputs, tree links,
// computed outputs and caches, per spec.md §3. All mutation goes through
// the façade in facade.go, which keeps the invariants of spec.md §3 intact.
type Node struct {
	mu sync.RWMutex

	id       NodeID
	parent   *Node
	children []*Node

	// --- style inputs -------------------------------------------------
	flexDirection  FlexDirection
	flexWrap       FlexWrap
	justifyContent JustifyContent
	alignItems     AlignItems
	alignSelf      AlignSelf
	alignContent   AlignContent
	justifySelf    JustifySelf

	alignItemsSafety   OverflowSafety
	alignSelfSafety    OverflowSafety
	alignContentSafety OverflowSafety

	flexGrow   float64
	flexShrink float64
	flexBasis  Value

	width, height             Value
	minWidth, minHeight       Value
	maxWidth, maxHeight       Value

	marginTop, marginRight, marginBottom, marginLeft     Value
	paddingTop, paddingRight, paddingBottom, paddingLeft  Value
	borderTop, borderRight, borderBottom, borderLeft      Value
	insetTop, insetRight, insetBottom, insetLeft          Value

	rowGap, columnGap Value

	positionType PositionType
	display      Display
	order        int

	direction   Direction
	writingMode WritingMode

	aspectRatio    float64 // 0 means "unset"
	hasAspectRatio bool

	measureFunc  MeasureFunc
	baselineFunc BaselineFunc

	log hclog.Logger

	// --- computed outputs ----------------------------------------------
	layout computedLayout

	// --- caches ----------------------------------------------------------
	intrinsic    intrinsicCache
	baseline     baselineCache
	isDirty      bool
	suspendDirty bool

	// lastAvailW/H record the basis this node was last laid out against,
	// so invariant 4 ("clean nodes reflect the last parent size laid out
	// against") is checkable. CalculateLayout does not consult them: a
	// repeat call with the same size reruns the full pass.
	lastAvailW, lastAvailH         float64
	lastAvailWDefinite, lastAvailHDefinite bool
	everLaidOut                   bool
}

// NewNode creates a Node with spec.md §3's defaults:
// flexDirection=row, flexWrap=nowrap, flexGrow=0, flexShrink=1,
// flexBasis=auto, minWidth/minHeight=auto, justifyContent=flex-start,
// alignItems=stretch, alignSelf/justifySelf=auto, alignContent=normal,
// everything else undefined/zero,
// alignItemsSafety family=unsafe, positionType=static, display=flex,
// direction=ltr, writingMode=horizontal-tb, rowGap/columnGap=0.
func NewNode() *Node {
	return &Node{
		id:             newNodeID(),
		flexDirection:  FlexDirectionRow,
		flexWrap:       FlexNoWrap,
		justifyContent: JustifyFlexStart,
		alignItems:     AlignStretch,
		alignSelf:      AlignSelfAuto,
		alignContent:   JustifyNormal,
		justifySelf:    JustifySelfAuto,

		flexGrow:   0,
		flexShrink: 1,
		flexBasis:  Auto,

		width: Undefined, height: Undefined,
		minWidth: Auto, minHeight: Auto,
		maxWidth: Undefined, maxHeight: Undefined,

		marginTop: Undefined, marginRight: Undefined, marginBottom: Undefined, marginLeft: Undefined,
		paddingTop: Undefined, paddingRight: Undefined, paddingBottom: Undefined, paddingLeft: Undefined,
		borderTop: Undefined, borderRight: Undefined, borderBottom: Undefined, borderLeft: Undefined,
		insetTop: Undefined, insetRight: Undefined, insetBottom: Undefined, insetLeft: Undefined,

		rowGap: Point(0), columnGap: Point(0),

		positionType: PositionStatic,
		display:      DisplayFlex,
		direction:    DirectionLTR,
		writingMode:  WritingModeHorizontalTB,

		isDirty: true,
	}
}

// ID returns the node's stable identity.
func (n *Node) ID() NodeID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

// Parent returns n's parent, or nil if n is a root.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// GetChildCount returns the number of children n owns.
func (n *Node) GetChildCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children)
}

// GetChild returns the i'th child, or nil if i is out of range.
func (n *Node) GetChild(i int) *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// childSnapshot returns a defensive copy of n's children slice.
func (n *Node) childSnapshot() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
