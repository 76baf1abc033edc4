package segbox

// Config holds the construction parameters of a Box.
type Config struct {
	Template string
	// Editable defaults to DefaultEditable and Hidden to HiddenFor(Editable)
	// when zero.
	Editable rune
	Hidden   rune
	// OnChange receives the composed value after every mutation. May be nil.
	OnChange func(value string)
}

// Box is the value and focus state of a segmented box.
//
// The zero Box is not usable; construct one with New or NewBox. Methods that
// change state return a new Box and never modify the receiver.
type Box struct {
	tpl      *Template
	value    []rune
	focus    int // ordinal into tpl.editableIdx
	onChange func(string)
}

// Cell is the render data for one position.
type Cell struct {
	Index   int
	Kind    CellKind
	Char    rune   // current value rune
	Display string // empty for an unfilled editable cell, a space for hidden cells
	Focused bool
}

// New parses cfg.Template and returns a Box focused on the first editable
// position. The observer is notified once with the initial value.
func New(cfg Config) (Box, error) {
	editable, hidden := cfg.Editable, cfg.Hidden
	if editable == 0 {
		editable = DefaultEditable
	}
	if hidden == 0 {
		hidden = HiddenFor(editable)
	}

	tpl, err := ParseTemplate(cfg.Template, editable, hidden)
	if err != nil {
		return Box{}, err
	}

	b := NewBox(tpl, cfg.OnChange)
	b.notify()
	return b, nil
}

// NewBox returns a Box over an already parsed template. Unlike New it does not
// notify the observer.
func NewBox(tpl *Template, onChange func(string)) Box {
	value := make([]rune, len(tpl.markup))
	copy(value, tpl.markup)
	return Box{
		tpl:      tpl,
		value:    value,
		focus:    0,
		onChange: onChange,
	}
}

// Template returns the box's template
func (b Box) Template() *Template {
	return b.tpl
}

// Value returns the composed string, always of template length
func (b Box) Value() string {
	return string(b.value)
}

// Len returns the number of positions
func (b Box) Len() int {
	return len(b.value)
}

// At returns the value rune at index i
func (b Box) At(i int) rune {
	return b.value[i]
}

// Focus returns the template index of the focused cell.
func (b Box) Focus() int {
	return b.tpl.editableIdx[b.focus]
}

// FocusNext moves focus to the next editable position, wrapping past the end.
func (b Box) FocusNext() Box {
	b.focus = (b.focus + 1) % len(b.tpl.editableIdx)
	return b
}

// FocusPrev moves focus to the previous editable position, wrapping past the start.
func (b Box) FocusPrev() Box {
	n := len(b.tpl.editableIdx)
	b.focus = (b.focus - 1 + n) % n
	return b
}

// FocusAt focuses the editable cell at index i.
func (b Box) FocusAt(i int) (Box, error) {
	if err := b.checkEditable(i); err != nil {
		return b, err
	}
	b.focus = b.tpl.ordinals[i]
	return b, nil
}

// SetCharacterAt writes r at editable index i and notifies the observer.
// Fixed and hidden positions are rejected with ErrNotEditable.
func (b Box) SetCharacterAt(i int, r rune) (Box, error) {
	if err := b.checkEditable(i); err != nil {
		return b, err
	}

	value := make([]rune, len(b.value))
	copy(value, b.value)
	value[i] = r
	b.value = value

	b.notify()
	return b, nil
}

// HandleInput writes r at index i and focuses the editable position after i.
func (b Box) HandleInput(i int, r rune) (Box, error) {
	next, err := b.SetCharacterAt(i, r)
	if err != nil {
		return b, err
	}
	next.focus = b.tpl.nextAfter(i)
	return next, nil
}

// HandleKey applies a navigation or erase key received by the cell at index i.
// It reports handled=false for keys it does not own, leaving the box unchanged.
func (b Box) HandleKey(i int, k Key) (Box, bool, error) {
	switch k {
	case KeyBackspace, KeyDelete:
		next, err := b.SetCharacterAt(i, b.tpl.editable)
		if err != nil {
			return b, true, err
		}
		next.focus = b.tpl.prevBefore(i)
		return next, true, nil

	case KeyLeft:
		if err := b.checkIndex(i); err != nil {
			return b, true, err
		}
		b.focus = b.tpl.prevBefore(i)
		return b, true, nil

	case KeyRight:
		if err := b.checkIndex(i); err != nil {
			return b, true, err
		}
		b.focus = b.tpl.nextAfter(i)
		return b, true, nil
	}

	return b, false, nil
}

// Reset restores the template value, focuses the first editable position and
// notifies the observer.
func (b Box) Reset() Box {
	r := NewBox(b.tpl, b.onChange)
	r.notify()
	return r
}

// Cells returns render data for every position in template order.
func (b Box) Cells() []Cell {
	cells := make([]Cell, len(b.value))
	focused := b.Focus()
	for i, r := range b.value {
		c := Cell{
			Index: i,
			Kind:  b.tpl.kinds[i],
			Char:  r,
		}
		switch c.Kind {
		case CellHidden:
			c.Display = " "
		case CellEditable:
			if r != b.tpl.editable {
				c.Display = string(r)
			}
			c.Focused = i == focused
		default:
			c.Display = string(r)
		}
		cells[i] = c
	}
	return cells
}

// Filled returns how many editable positions hold a user character
func (b Box) Filled() int {
	n := 0
	for _, pos := range b.tpl.editableIdx {
		if b.value[pos] != b.tpl.editable {
			n++
		}
	}
	return n
}

// Complete reports whether every editable position is filled
func (b Box) Complete() bool {
	return b.Filled() == len(b.tpl.editableIdx)
}

// Entered returns only the user-entered characters, in template order.
func (b Box) Entered() string {
	out := make([]rune, 0, len(b.tpl.editableIdx))
	for _, pos := range b.tpl.editableIdx {
		if r := b.value[pos]; r != b.tpl.editable {
			out = append(out, r)
		}
	}
	return string(out)
}

func (b Box) checkIndex(i int) error {
	if i < 0 || i >= len(b.value) {
		return NewConfigError(ErrTypeIndexOutOfRange, "index %d outside [0, %d)", i, len(b.value))
	}
	return nil
}

func (b Box) checkEditable(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if !b.tpl.IsEditable(i) {
		return NewConfigError(ErrTypeNotEditable, "position %d is %s", i, b.tpl.kinds[i])
	}
	return nil
}

func (b Box) notify() {
	if b.onChange != nil {
		b.onChange(string(b.value))
	}
}
