package flexkit

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// asFloat64 coerces a property-bag value to float64, accepting the numeric
// kinds go-toml/json decoding and direct Go literals produce.
func asFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// propApplier parses and validates raw against key's expected shape,
// returning a closure that performs the actual mutation. Splitting parse
// from apply is what lets Style() validate a whole bag before mutating
// anything (spec.md §7: no partial mutation on error).
func propApplier(key string, raw any) (apply func(n *Node) error, err error) {
	valueField := func(setter func(*Node, Value) *Node) (func(n *Node) error, error) {
		v, err := ParseValue(raw)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { setter(n, v); return nil }, nil
	}

	switch key {
	case "width":
		return valueField((*Node).SetWidth)
	case "height":
		return valueField((*Node).SetHeight)
	case "minWidth":
		return valueField((*Node).SetMinWidth)
	case "minHeight":
		return valueField((*Node).SetMinHeight)
	case "maxWidth":
		return valueField((*Node).SetMaxWidth)
	case "maxHeight":
		return valueField((*Node).SetMaxHeight)
	case "flexBasis":
		return valueField((*Node).SetFlexBasis)
	case "margin":
		return valueField((*Node).SetMargin)
	case "marginTop":
		return valueField((*Node).SetMarginTop)
	case "marginRight":
		return valueField((*Node).SetMarginRight)
	case "marginBottom":
		return valueField((*Node).SetMarginBottom)
	case "marginLeft":
		return valueField((*Node).SetMarginLeft)
	case "padding":
		return valueField((*Node).SetPadding)
	case "paddingTop":
		return valueField((*Node).SetPaddingTop)
	case "paddingRight":
		return valueField((*Node).SetPaddingRight)
	case "paddingBottom":
		return valueField((*Node).SetPaddingBottom)
	case "paddingLeft":
		return valueField((*Node).SetPaddingLeft)
	case "borderTop":
		return valueField((*Node).SetBorderTop)
	case "borderRight":
		return valueField((*Node).SetBorderRight)
	case "borderBottom":
		return valueField((*Node).SetBorderBottom)
	case "borderLeft":
		return valueField((*Node).SetBorderLeft)
	case "top":
		return valueField((*Node).SetTop)
	case "right":
		return valueField((*Node).SetRight)
	case "bottom":
		return valueField((*Node).SetBottom)
	case "left":
		return valueField((*Node).SetLeft)
	case "rowGap":
		return valueField((*Node).SetRowGap)
	case "columnGap":
		return valueField((*Node).SetColumnGap)
	case "gap":
		return valueField((*Node).SetGap)

	case "flexGrow":
		f, ok := asFloat64(raw)
		if !ok {
			return nil, errInvalidValue("flexGrow", raw)
		}
		if err := validateNonNegative("flexGrow", f); err != nil {
			return nil, err
		}
		return func(n *Node) error { _, err := n.SetFlexGrow(f); return err }, nil
	case "flexShrink":
		f, ok := asFloat64(raw)
		if !ok {
			return nil, errInvalidValue("flexShrink", raw)
		}
		if err := validateNonNegative("flexShrink", f); err != nil {
			return nil, err
		}
		return func(n *Node) error { _, err := n.SetFlexShrink(f); return err }, nil
	case "order":
		f, ok := asFloat64(raw)
		if !ok {
			return nil, errInvalidValue("order", raw)
		}
		if err := validateFinite("order", f); err != nil {
			return nil, err
		}
		return func(n *Node) error { _, err := n.SetOrderFromFloat(f); return err }, nil
	case "aspectRatio":
		f, ok := asFloat64(raw)
		if !ok {
			return nil, errInvalidValue("aspectRatio", raw)
		}
		if err := validateFinite("aspectRatio", f); err != nil || f <= 0 {
			return nil, errInvalidValue("aspectRatio", raw)
		}
		return func(n *Node) error { _, err := n.SetAspectRatio(f); return err }, nil

	case "flexDirection":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("flexDirection", raw)
		}
		v, err := parseFlexDirection(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetFlexDirection(v); return nil }, nil
	case "flexWrap":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("flexWrap", raw)
		}
		v, err := parseFlexWrap(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetFlexWrap(v); return nil }, nil
	case "justifyContent":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("justifyContent", raw)
		}
		v, err := parseJustifyContent(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetJustifyContent(v); return nil }, nil
	case "alignItems":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignItems", raw)
		}
		v, err := parseAlignItems(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignItems(v); return nil }, nil
	case "alignSelf":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignSelf", raw)
		}
		v, err := parseAlignSelf(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignSelf(v); return nil }, nil
	case "alignContent":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignContent", raw)
		}
		v, err := parseAlignContent(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignContent(v); return nil }, nil
	case "justifySelf":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("justifySelf", raw)
		}
		v, err := parseJustifySelf(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetJustifySelf(v); return nil }, nil
	case "alignItemsSafety":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignItemsSafety", raw)
		}
		v, err := parseOverflowSafety(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignItemsSafety(v); return nil }, nil
	case "alignSelfSafety":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignSelfSafety", raw)
		}
		v, err := parseOverflowSafety(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignSelfSafety(v); return nil }, nil
	case "alignContentSafety":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("alignContentSafety", raw)
		}
		v, err := parseOverflowSafety(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetAlignContentSafety(v); return nil }, nil
	case "positionType":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("positionType", raw)
		}
		v, err := parsePositionType(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetPositionType(v); return nil }, nil
	case "display":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("display", raw)
		}
		v, err := parseDisplay(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetDisplay(v); return nil }, nil
	case "direction":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("direction", raw)
		}
		v, err := parseDirection(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetDirection(v); return nil }, nil
	case "writingMode":
		s, ok := asString(raw)
		if !ok {
			return nil, errInvalidValue("writingMode", raw)
		}
		v, err := parseWritingMode(s)
		if err != nil {
			return nil, err
		}
		return func(n *Node) error { n.SetWritingMode(v); return nil }, nil
	}

	return nil, fmt.Errorf("unreachable: unhandled recognised key %q", key)
}

// validateProp parses/validates key's value without mutating n.
func (n *Node) validateProp(key string, raw any) error {
	_, err := propApplier(key, raw)
	return err
}

// applyProp parses and applies key's value to n.
func (n *Node) applyProp(key string, raw any) error {
	apply, err := propApplier(key, raw)
	if err != nil {
		return err
	}
	return apply(n)
}

// NewFromProps builds a Node from a property bag, per spec.md §6: keys not
// in propKeyPriority are silently ignored (unlike Style/Set, which reject
// them). A "children" key holding a []any of further property bags is
// recognised here (not part of the typed setter surface) to let
// LoadTOMLTree and tests build whole trees declaratively in one call.
func NewFromProps(props map[string]any) (*Node, error) {
	n := NewNode()
	for _, k := range orderedKeys(filterKnownKeys(props)) {
		if err := n.applyProp(k, props[k]); err != nil {
			return nil, err
		}
	}

	if rawChildren, ok := props["children"]; ok {
		list, ok := rawChildren.([]any)
		if !ok {
			return nil, errInvalidValue("children", rawChildren)
		}
		for _, rc := range list {
			childBag, ok := rc.(map[string]any)
			if !ok {
				return nil, errInvalidValue("children[]", rc)
			}
			child, err := NewFromProps(childBag)
			if err != nil {
				return nil, err
			}
			if err := n.AppendChild(child); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

// filterKnownKeys drops any key NewFromProps doesn't recognise, per
// spec.md §6's "silently ignored in the property bag".
func filterKnownKeys(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		if _, ok := propKeyPriority[k]; ok {
			out[k] = v
		}
	}
	return out
}

// LoadTOMLTree decodes a TOML document shaped like:
//
//	[node]
//	flexDirection = "row"
//	width = 300
//
//	[[node.children]]
//	width = 50
//	flexGrow = 1
//
// into a Node tree via NewFromProps. This is C16's config-loading path,
// grounded on the teacher's use of go-toml/v2 for AppConfig.
func LoadTOMLTree(data []byte) (*Node, error) {
	var doc struct {
		Node map[string]any `toml:"node"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Node == nil {
		return nil, fmt.Errorf("flexkit: TOML document has no [node] table")
	}
	return NewFromProps(normalizeTOMLChildren(doc.Node))
}

// normalizeTOMLChildren rewrites go-toml's []map[string]interface{}
// decoding of [[node.children]] into the []any NewFromProps expects.
func normalizeTOMLChildren(bag map[string]any) map[string]any {
	raw, ok := bag["children"]
	if !ok {
		return bag
	}
	list, ok := raw.([]map[string]any)
	if !ok {
		return bag
	}
	converted := make([]any, len(list))
	for i, child := range list {
		converted[i] = normalizeTOMLChildren(child)
	}
	out := make(map[string]any, len(bag))
	for k, v := range bag {
		out[k] = v
	}
	out["children"] = converted
	return out
}
