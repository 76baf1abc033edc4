package segbox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder collects every value passed to OnChange
type recorder struct {
	values []string
}

func (r *recorder) onChange(v string) {
	r.values = append(r.values, v)
}

func newHelloBox(t *testing.T, rec *recorder) Box {
	t.Helper()
	cfg := Config{Template: "__hello___", Editable: '_', Hidden: ' '}
	if rec != nil {
		cfg.OnChange = rec.onChange
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b
}

func TestNewFocusesFirstEditable(t *testing.T) {
	b, err := New(Config{Template: "ab_c_"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Focus() != 2 {
		t.Errorf("Focus() = %d, want 2", b.Focus())
	}
	if b.Value() != "ab_c_" {
		t.Errorf("Value() = %q, want %q", b.Value(), "ab_c_")
	}
}

func TestNewNotifiesInitialValue(t *testing.T) {
	rec := &recorder{}
	newHelloBox(t, rec)
	if diff := cmp.Diff([]string{"__hello___"}, rec.values); diff != "" {
		t.Errorf("OnChange values mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejectsDegenerateTemplates(t *testing.T) {
	for _, markup := range []string{"", "hello", "   "} {
		if _, err := New(Config{Template: markup}); err == nil {
			t.Errorf("New(%q) expected error", markup)
		}
	}
}

func TestNewSpaceEditableMarker(t *testing.T) {
	b, err := New(Config{Template: "  _  ", Editable: ' '})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	tpl := b.Template()
	if tpl.Hidden() != '_' {
		t.Errorf("Hidden() = %q, want '_'", tpl.Hidden())
	}
	if diff := cmp.Diff([]int{0, 1, 3, 4}, tpl.EditablePositions()); diff != "" {
		t.Errorf("EditablePositions() mismatch (-want +got):\n%s", diff)
	}
	if tpl.Kind(2) != CellHidden {
		t.Errorf("Kind(2) = %v, want hidden", tpl.Kind(2))
	}
}

func TestHiddenFor(t *testing.T) {
	tests := map[rune]rune{'_': ' ', '#': ' ', ' ': '_'}
	for editable, want := range tests {
		if got := HiddenFor(editable); got != want {
			t.Errorf("HiddenFor(%q) = %q, want %q", editable, got, want)
		}
	}
}

func TestHelloScenario(t *testing.T) {
	rec := &recorder{}
	b := newHelloBox(t, rec)

	if b.Focus() != 0 {
		t.Fatalf("initial Focus() = %d, want 0", b.Focus())
	}

	b, err := b.HandleInput(b.Focus(), 'A')
	if err != nil {
		t.Fatal(err)
	}
	if b.Value() != "A_hello___" || b.Focus() != 1 {
		t.Fatalf("after A: value=%q focus=%d, want %q focus=1", b.Value(), b.Focus(), "A_hello___")
	}

	b, err = b.HandleInput(b.Focus(), 'B')
	if err != nil {
		t.Fatal(err)
	}
	if b.Value() != "ABhello___" || b.Focus() != 7 {
		t.Fatalf("after B: value=%q focus=%d, want %q focus=7", b.Value(), b.Focus(), "ABhello___")
	}

	b, handled, err := b.HandleKey(b.Focus(), KeyBackspace)
	if err != nil || !handled {
		t.Fatalf("HandleKey(Backspace) handled=%v err=%v", handled, err)
	}
	if b.Value() != "ABhello___" || b.Focus() != 1 {
		t.Fatalf("after backspace: value=%q focus=%d, want %q focus=1", b.Value(), b.Focus(), "ABhello___")
	}

	want := []string{"__hello___", "A_hello___", "ABhello___", "ABhello___"}
	if diff := cmp.Diff(want, rec.values); diff != "" {
		t.Errorf("OnChange values mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceClearsCell(t *testing.T) {
	b := newHelloBox(t, nil)
	b, _ = b.HandleInput(0, 'A')
	b, _ = b.HandleInput(1, 'B')
	b, _ = b.HandleInput(7, 'C')

	for _, k := range []Key{KeyBackspace, KeyDelete} {
		got, _, err := b.HandleKey(7, k)
		if err != nil {
			t.Fatalf("HandleKey(7, %v) error = %v", k, err)
		}
		if got.Value() != "ABhello___" {
			t.Errorf("HandleKey(7, %v) value = %q, want %q", k, got.Value(), "ABhello___")
		}
		if got.Focus() != 1 {
			t.Errorf("HandleKey(7, %v) focus = %d, want 1", k, got.Focus())
		}
	}
}

func TestBackspaceAtFirstWraps(t *testing.T) {
	b := newHelloBox(t, nil)
	b, _, err := b.HandleKey(0, KeyBackspace)
	if err != nil {
		t.Fatal(err)
	}
	if b.Focus() != 9 {
		t.Errorf("Focus() = %d, want 9", b.Focus())
	}
}

func TestArrowKeysDoNotMutate(t *testing.T) {
	rec := &recorder{}
	b := newHelloBox(t, rec)

	b, handled, err := b.HandleKey(b.Focus(), KeyRight)
	if err != nil || !handled {
		t.Fatalf("HandleKey(Right) handled=%v err=%v", handled, err)
	}
	if b.Focus() != 1 {
		t.Errorf("after Right Focus() = %d, want 1", b.Focus())
	}

	b, _, _ = b.HandleKey(b.Focus(), KeyRight)
	if b.Focus() != 7 {
		t.Errorf("after Right Right Focus() = %d, want 7", b.Focus())
	}

	b, _, _ = b.HandleKey(b.Focus(), KeyLeft)
	if b.Focus() != 1 {
		t.Errorf("after Left Focus() = %d, want 1", b.Focus())
	}

	if len(rec.values) != 1 {
		t.Errorf("arrow keys notified %d times, want only the initial notification", len(rec.values)-1)
	}
	if b.Value() != "__hello___" {
		t.Errorf("Value() = %q, want unchanged", b.Value())
	}
}

func TestOtherKeysUnhandled(t *testing.T) {
	b := newHelloBox(t, nil)
	got, handled, err := b.HandleKey(0, KeyOther)
	if handled || err != nil {
		t.Errorf("HandleKey(Other) handled=%v err=%v, want false nil", handled, err)
	}
	if got.Focus() != b.Focus() || got.Value() != b.Value() {
		t.Error("HandleKey(Other) changed the box")
	}
}

func TestFocusNextWrapsAndSkipsFixed(t *testing.T) {
	b := newHelloBox(t, nil)
	var visited []int
	for i := 0; i < 6; i++ {
		visited = append(visited, b.Focus())
		b = b.FocusNext()
	}
	if diff := cmp.Diff([]int{0, 1, 7, 8, 9, 0}, visited); diff != "" {
		t.Errorf("FocusNext order mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusPrevWraps(t *testing.T) {
	b := newHelloBox(t, nil)
	var visited []int
	for i := 0; i < 6; i++ {
		visited = append(visited, b.Focus())
		b = b.FocusPrev()
	}
	if diff := cmp.Diff([]int{0, 9, 8, 7, 1, 0}, visited); diff != "" {
		t.Errorf("FocusPrev order mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusNextPrevInverse(t *testing.T) {
	b := newHelloBox(t, nil)
	for _, pos := range b.Template().EditablePositions() {
		start, err := b.FocusAt(pos)
		if err != nil {
			t.Fatal(err)
		}
		if got := start.FocusNext().FocusPrev().Focus(); got != pos {
			t.Errorf("FocusNext().FocusPrev() from %d = %d", pos, got)
		}
		if got := start.FocusPrev().FocusNext().Focus(); got != pos {
			t.Errorf("FocusPrev().FocusNext() from %d = %d", pos, got)
		}
	}
}

func TestSingleEditableFocusStays(t *testing.T) {
	b, err := New(Config{Template: "ab_cd"})
	if err != nil {
		t.Fatal(err)
	}
	if b.FocusNext().Focus() != 2 || b.FocusPrev().Focus() != 2 {
		t.Error("focus should stay on the only editable position")
	}
	b, _ = b.HandleInput(2, 'x')
	if b.Focus() != 2 || b.Value() != "abxcd" {
		t.Errorf("value=%q focus=%d", b.Value(), b.Focus())
	}
}

func TestFixedLiteralsImmutable(t *testing.T) {
	rec := &recorder{}
	b := newHelloBox(t, rec)

	for i := 2; i <= 6; i++ {
		got, err := b.SetCharacterAt(i, 'Z')
		if !errors.Is(err, ErrNotEditable) {
			t.Errorf("SetCharacterAt(%d) error = %v, want ErrNotEditable", i, err)
		}
		if got.Value() != "__hello___" {
			t.Errorf("SetCharacterAt(%d) changed value to %q", i, got.Value())
		}
		if _, err := got.HandleInput(i, 'Z'); !errors.Is(err, ErrNotEditable) {
			t.Errorf("HandleInput(%d) error = %v, want ErrNotEditable", i, err)
		}
	}

	if len(rec.values) != 1 {
		t.Errorf("rejected writes notified the observer %d times", len(rec.values)-1)
	}
}

func TestHiddenPositionsExcluded(t *testing.T) {
	b, err := New(Config{Template: "__ __"})
	if err != nil {
		t.Fatal(err)
	}

	seen := map[int]bool{}
	for i := 0; i < 8; i++ {
		seen[b.Focus()] = true
		b = b.FocusNext()
	}
	if seen[2] {
		t.Error("hidden position 2 received focus")
	}

	if _, err := b.SetCharacterAt(2, 'x'); !errors.Is(err, ErrNotEditable) {
		t.Errorf("SetCharacterAt(hidden) error = %v, want ErrNotEditable", err)
	}
	if _, err := b.FocusAt(2); !errors.Is(err, ErrNotEditable) {
		t.Errorf("FocusAt(hidden) error = %v, want ErrNotEditable", err)
	}

	cells := b.Cells()
	if cells[2].Kind != CellHidden || cells[2].Focused || cells[2].Display != " " {
		t.Errorf("hidden cell = %+v", cells[2])
	}
}

func TestIndexOutOfRange(t *testing.T) {
	b := newHelloBox(t, nil)
	for _, i := range []int{-1, 10} {
		if _, err := b.SetCharacterAt(i, 'x'); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetCharacterAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if _, _, err := b.HandleKey(i, KeyLeft); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("HandleKey(%d, Left) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestReplaceOnWrite(t *testing.T) {
	b := newHelloBox(t, nil)
	after, err := b.HandleInput(0, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if b.Value() != "__hello___" || b.Focus() != 0 {
		t.Errorf("original box changed: value=%q focus=%d", b.Value(), b.Focus())
	}
	if after.Value() != "A_hello___" {
		t.Errorf("new box value = %q", after.Value())
	}
}

func TestValueLengthInvariant(t *testing.T) {
	b := newHelloBox(t, nil)
	inputs := []rune("éxyz12345€")
	for i, r := range inputs {
		var err error
		if i%3 == 2 {
			b, _, err = b.HandleKey(b.Focus(), KeyBackspace)
		} else {
			b, err = b.HandleInput(b.Focus(), r)
		}
		if err != nil {
			t.Fatal(err)
		}
		if got := len([]rune(b.Value())); got != b.Template().Len() {
			t.Fatalf("step %d: value length %d, want %d", i, got, b.Template().Len())
		}
		if string([]rune(b.Value())[2:7]) != "hello" {
			t.Fatalf("step %d: fixed literal changed: %q", i, b.Value())
		}
	}
}

func TestCells(t *testing.T) {
	b := newHelloBox(t, nil)
	b, _ = b.HandleInput(0, 'A')

	cells := b.Cells()
	if len(cells) != 10 {
		t.Fatalf("len(Cells()) = %d, want 10", len(cells))
	}

	want := []Cell{
		{Index: 0, Kind: CellEditable, Char: 'A', Display: "A"},
		{Index: 1, Kind: CellEditable, Char: '_', Display: "", Focused: true},
		{Index: 2, Kind: CellFixed, Char: 'h', Display: "h"},
	}
	if diff := cmp.Diff(want, cells[:3]); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressQueries(t *testing.T) {
	b := newHelloBox(t, nil)
	if b.Complete() || b.Filled() != 0 || b.Entered() != "" {
		t.Fatalf("fresh box: complete=%v filled=%d entered=%q", b.Complete(), b.Filled(), b.Entered())
	}
	for _, r := range "ABCDE" {
		b, _ = b.HandleInput(b.Focus(), r)
	}
	if !b.Complete() || b.Filled() != 5 || b.Entered() != "ABCDE" {
		t.Errorf("filled box: complete=%v filled=%d entered=%q", b.Complete(), b.Filled(), b.Entered())
	}
	if b.Value() != "ABhelloCDE" {
		t.Errorf("Value() = %q, want %q", b.Value(), "ABhelloCDE")
	}
}

func TestReset(t *testing.T) {
	rec := &recorder{}
	b := newHelloBox(t, rec)
	b, _ = b.HandleInput(0, 'A')
	b, _ = b.HandleInput(1, 'B')
	b = b.Reset()

	if b.Value() != "__hello___" || b.Focus() != 0 {
		t.Errorf("after Reset value=%q focus=%d", b.Value(), b.Focus())
	}
	if last := rec.values[len(rec.values)-1]; last != "__hello___" {
		t.Errorf("last notification = %q", last)
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"Backspace":  KeyBackspace,
		"Delete":     KeyDelete,
		"ArrowLeft":  KeyLeft,
		"ArrowRight": KeyRight,
		"Enter":      KeyOther,
		"a":          KeyOther,
	}
	for name, want := range tests {
		if got := ParseKey(name); got != want {
			t.Errorf("ParseKey(%q) = %v, want %v", name, got, want)
		}
	}
}
