package flexkit

// FlexDirection establishes the main axis of a flex container.
type FlexDirection int

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

// FlexWrap controls whether flex items are forced onto one line or may wrap.
type FlexWrap int

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapReverse
)

// JustifyContent distributes free space along the main axis. The L3
// keywords (Start/End/Normal/Left/Right) are resolved to the flex keywords
// by resolveJustify before the main-axis positioner runs.
type JustifyContent int

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
	JustifyStart
	JustifyEnd
	JustifyNormal
	JustifyLeft
	JustifyRight
	// JustifyStretch has no meaning for justify-content; it exists only to
	// give align-content a first-class stretch keyword distinct from
	// normal, since AlignContent reuses this same value space.
	JustifyStretch
)

// AlignItems/AlignSelf/AlignContent share the same keyword family. Self-*
// and Normal are resolved to the flex keywords before use (§4.8/§4.9/§4.10).
type AlignItems int

const (
	AlignFlexStart AlignItems = iota
	AlignFlexEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignStart
	AlignEnd
	AlignNormal
	AlignSelfStart
	AlignSelfEnd
	AlignLeft
	AlignRight
)

// AlignSelf is AlignItems plus Auto, meaning "inherit the container's
// align-items".
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = -1
)

// JustifySelf mirrors AlignSelf's shape (AlignItems' keyword space plus
// Auto) but governs the main axis instead of the cross axis. It only
// matters for an absolutely positioned node whose inset pair on that axis
// is indefinite, where it picks the static-position fallback (spec.md
// §4.11); in normal flow the main axis is distributed by the container's
// justify-content and justify-self has no effect.
type JustifySelf = AlignSelf

const (
	JustifySelfAuto = AlignSelfAuto
)

// AlignContent shares AlignItems' keyword space plus the distributed
// keywords (SpaceBetween/SpaceAround/SpaceEvenly), reusing JustifyContent's
// values so one resolver can serve both.
type AlignContent = JustifyContent

// OverflowSafety controls whether an alignment that would overflow its
// container falls back to flex-start ("safe") or is honoured regardless
// ("unsafe", the default).
type OverflowSafety int

const (
	OverflowUnsafe OverflowSafety = iota
	OverflowSafe
)

// PositionType is the node's positioning scheme.
type PositionType int

const (
	PositionStatic PositionType = iota
	PositionRelative
	PositionAbsolute
)

// Display toggles whether a node participates in layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Direction is the node's inline-base direction.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// WritingMode selects which physical axis is "inline" for axis resolution.
type WritingMode int

const (
	WritingModeHorizontalTB WritingMode = iota
	WritingModeVerticalRL
	WritingModeVerticalLR
)

func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionRow:
		return "row"
	case FlexDirectionRowReverse:
		return "row-reverse"
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	}
	return "unknown"
}

func (w FlexWrap) String() string {
	switch w {
	case FlexNoWrap:
		return "nowrap"
	case FlexWrapWrap:
		return "wrap"
	case FlexWrapReverse:
		return "wrap-reverse"
	}
	return "unknown"
}
