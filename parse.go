package flexkit

import "strings"

// The following parsers accept the CSS-like keyword strings a property bag
// or TOML document would realistically carry, e.g. "row-reverse",
// "flex-end", "space-between", "wrap-reverse". Unrecognised strings report
// InvalidValue (spec.md §7).

func parseFlexDirection(s string) (FlexDirection, error) {
	switch strings.ToLower(s) {
	case "row":
		return FlexDirectionRow, nil
	case "row-reverse":
		return FlexDirectionRowReverse, nil
	case "column":
		return FlexDirectionColumn, nil
	case "column-reverse":
		return FlexDirectionColumnReverse, nil
	}
	return 0, errInvalidValue("flexDirection", s)
}

func parseFlexWrap(s string) (FlexWrap, error) {
	switch strings.ToLower(s) {
	case "nowrap":
		return FlexNoWrap, nil
	case "wrap":
		return FlexWrapWrap, nil
	case "wrap-reverse":
		return FlexWrapReverse, nil
	}
	return 0, errInvalidValue("flexWrap", s)
}

func parseJustifyContent(s string) (JustifyContent, error) {
	switch strings.ToLower(s) {
	case "flex-start":
		return JustifyFlexStart, nil
	case "flex-end":
		return JustifyFlexEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	case "space-evenly":
		return JustifySpaceEvenly, nil
	case "start":
		return JustifyStart, nil
	case "end":
		return JustifyEnd, nil
	case "normal":
		return JustifyNormal, nil
	case "left":
		return JustifyLeft, nil
	case "right":
		return JustifyRight, nil
	}
	return 0, errInvalidValue("justifyContent", s)
}

// parseAlignContent accepts everything parseJustifyContent does, plus
// "stretch", which has no justify-content equivalent (spec.md §4.10).
func parseAlignContent(s string) (AlignContent, error) {
	if strings.ToLower(s) == "stretch" {
		return JustifyStretch, nil
	}
	v, err := parseJustifyContent(s)
	if err != nil {
		return 0, errInvalidValue("alignContent", s)
	}
	return v, nil
}

func parseAlignItems(s string) (AlignItems, error) {
	switch strings.ToLower(s) {
	case "flex-start":
		return AlignFlexStart, nil
	case "flex-end":
		return AlignFlexEnd, nil
	case "center":
		return AlignCenter, nil
	case "stretch":
		return AlignStretch, nil
	case "baseline":
		return AlignBaseline, nil
	case "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	case "normal":
		return AlignNormal, nil
	case "self-start":
		return AlignSelfStart, nil
	case "self-end":
		return AlignSelfEnd, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return 0, errInvalidValue("alignItems", s)
}

func parseAlignSelf(s string) (AlignSelf, error) {
	if strings.ToLower(s) == "auto" {
		return AlignSelfAuto, nil
	}
	v, err := parseAlignItems(s)
	if err != nil {
		return 0, errInvalidValue("alignSelf", s)
	}
	return AlignSelf(v), nil
}

// parseJustifySelf accepts the same keywords as parseAlignSelf (including
// "auto"), since JustifySelf shares AlignSelf's type and keyword space.
func parseJustifySelf(s string) (JustifySelf, error) {
	v, err := parseAlignSelf(s)
	if err != nil {
		return 0, errInvalidValue("justifySelf", s)
	}
	return v, nil
}

func parseOverflowSafety(s string) (OverflowSafety, error) {
	switch strings.ToLower(s) {
	case "safe":
		return OverflowSafe, nil
	case "unsafe":
		return OverflowUnsafe, nil
	}
	return 0, errInvalidValue("safety", s)
}

func parsePositionType(s string) (PositionType, error) {
	switch strings.ToLower(s) {
	case "static":
		return PositionStatic, nil
	case "relative":
		return PositionRelative, nil
	case "absolute":
		return PositionAbsolute, nil
	}
	return 0, errInvalidValue("positionType", s)
}

func parseDisplay(s string) (Display, error) {
	switch strings.ToLower(s) {
	case "flex":
		return DisplayFlex, nil
	case "none":
		return DisplayNone, nil
	}
	return 0, errInvalidValue("display", s)
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	}
	return 0, errInvalidValue("direction", s)
}

func parseWritingMode(s string) (WritingMode, error) {
	switch strings.ToLower(s) {
	case "horizontal-tb":
		return WritingModeHorizontalTB, nil
	case "vertical-rl":
		return WritingModeVerticalRL, nil
	case "vertical-lr":
		return WritingModeVerticalLR, nil
	}
	return 0, errInvalidValue("writingMode", s)
}
