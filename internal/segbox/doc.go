// Package segbox implements the state behind a segmented text-entry box.
//
// A segmented box is driven by a template string. Each rune of the template
// becomes one cell:
//
//   - the editable marker (e.g. '_') becomes an input cell holding one rune
//   - the hidden marker (e.g. ' ') becomes a blank, non-interactive gap
//   - any other rune is a fixed literal shown as-is
//
// For the template "__hello___" with editable '_' and hidden ' ', the box has
// five editable cells (0, 1, 7, 8, 9) and the fixed literal "hello".
//
// # State
//
// Template is immutable and computed once. Box carries the current value and
// the focused cell. Box is a value type: every mutating method returns a new
// Box and leaves the receiver untouched, which is what a Bubble Tea Update
// function expects.
//
//	tpl, err := segbox.ParseTemplate("__hello___", '_', ' ')
//	if err != nil {
//	    return err
//	}
//	box := segbox.NewBox(tpl, func(v string) { fmt.Println(v) })
//	box, _ = box.HandleInput(box.Focus(), 'A') // prints "A_hello___"
//
// # Focus
//
// Focus is stored as an ordinal into the template's editable positions, so
// moving it is constant time and always terminates. A template without any
// editable position is rejected by ParseTemplate.
package segbox
