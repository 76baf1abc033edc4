package segbox

import (
	"unicode/utf8"
)

// Default markers used when a preset does not override them.
const (
	DefaultEditable = '_'
	DefaultHidden   = ' '
)

// HiddenFor returns the default hidden marker to pair with editable. A space
// editable marker swaps the defaults so the two never collide.
func HiddenFor(editable rune) rune {
	if editable == DefaultHidden {
		return DefaultEditable
	}
	return DefaultHidden
}

// CellKind is the variant of a single template position
type CellKind int

const (
	// CellFixed is a literal template character that never changes
	CellFixed CellKind = iota
	// CellEditable accepts one user-entered character
	CellEditable
	// CellHidden renders as a blank gap and is skipped by focus traversal
	CellHidden
)

// String returns the cell kind name
func (k CellKind) String() string {
	switch k {
	case CellFixed:
		return "fixed"
	case CellEditable:
		return "editable"
	case CellHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Template is the immutable layout of a segmented box.
type Template struct {
	markup   []rune
	editable rune
	hidden   rune
	kinds    []CellKind
	// editableIdx lists editable positions in template order
	editableIdx []int
	// ordinals maps a position to its index in editableIdx, or -1
	ordinals []int
}

// ParseTemplate builds a Template from markup and the two marker runes.
//
// It fails with a *ConfigError when the markup is empty, when both markers are
// the same rune, or when no position matches the editable marker.
func ParseTemplate(markup string, editable, hidden rune) (*Template, error) {
	if markup == "" {
		return nil, NewConfigError(ErrTypeEmptyTemplate, "template must contain at least one character")
	}
	if editable == hidden {
		return nil, NewConfigError(ErrTypeAmbiguousMarkers, "editable and hidden markers are both %q", editable)
	}

	runes := []rune(markup)
	t := &Template{
		markup:   runes,
		editable: editable,
		hidden:   hidden,
		kinds:    make([]CellKind, len(runes)),
		ordinals: make([]int, len(runes)),
	}

	for i, r := range runes {
		t.ordinals[i] = -1
		switch r {
		case editable:
			t.kinds[i] = CellEditable
			t.ordinals[i] = len(t.editableIdx)
			t.editableIdx = append(t.editableIdx, i)
		case hidden:
			t.kinds[i] = CellHidden
		default:
			t.kinds[i] = CellFixed
		}
	}

	if len(t.editableIdx) == 0 {
		return nil, NewConfigError(ErrTypeNoEditablePositions, "template %q has no %q positions", markup, editable)
	}

	return t, nil
}

// ParseMarker converts a one-character string into a marker rune.
func ParseMarker(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, NewConfigError(ErrTypeInvalidMarker, "%s marker %q must be a single character", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Len returns the number of positions in the template
func (t *Template) Len() int {
	return len(t.markup)
}

// String returns the original markup
func (t *Template) String() string {
	return string(t.markup)
}

// Editable returns the editable marker rune
func (t *Template) Editable() rune {
	return t.editable
}

// Hidden returns the hidden marker rune
func (t *Template) Hidden() rune {
	return t.hidden
}

// At returns the template rune at index i
func (t *Template) At(i int) rune {
	return t.markup[i]
}

// Kind returns the cell kind at index i
func (t *Template) Kind(i int) CellKind {
	return t.kinds[i]
}

// IsEditable reports whether i is an editable position. Out-of-range indices
// are never editable.
func (t *Template) IsEditable(i int) bool {
	return i >= 0 && i < len(t.kinds) && t.kinds[i] == CellEditable
}

// EditablePositions returns a copy of the editable indices in template order
func (t *Template) EditablePositions() []int {
	out := make([]int, len(t.editableIdx))
	copy(out, t.editableIdx)
	return out
}

// EditableCount returns the number of editable positions
func (t *Template) EditableCount() int {
	return len(t.editableIdx)
}

// nextAfter returns the ordinal of the first editable position strictly after
// index i, wrapping to the first editable position.
func (t *Template) nextAfter(i int) int {
	if t.IsEditable(i) {
		return (t.ordinals[i] + 1) % len(t.editableIdx)
	}
	for ord, pos := range t.editableIdx {
		if pos > i {
			return ord
		}
	}
	return 0
}

// prevBefore returns the ordinal of the last editable position strictly
// before index i, wrapping to the last editable position.
func (t *Template) prevBefore(i int) int {
	n := len(t.editableIdx)
	if t.IsEditable(i) {
		return (t.ordinals[i] - 1 + n) % n
	}
	for ord := n - 1; ord >= 0; ord-- {
		if t.editableIdx[ord] < i {
			return ord
		}
	}
	return n - 1
}
