package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/segbox/internal/logging"
	"github.com/muurk/segbox/internal/segbox"
)

const barWidth = 20

// ValueChangedMsg is emitted after every mutation of the box value
type ValueChangedMsg struct {
	Value string
}

// SubmittedMsg is emitted when the user presses enter
type SubmittedMsg struct {
	Value    string
	Complete bool
}

// CancelledMsg is emitted when the user presses esc or ctrl+c
type CancelledMsg struct{}

// Config holds the construction parameters of a Model.
type Config struct {
	Template string
	Editable rune // defaults to segbox.DefaultEditable
	Hidden   rune // defaults to segbox.HiddenFor(Editable)
	Style    *Style
	Title    string
	OnChange func(value string)

	// QuitOnDone quits the program on submit or cancel. Set it when the box
	// is the program's root model.
	QuitOnDone bool
}

// Model is the Bubble Tea model of a segmented input box
type Model struct {
	box    segbox.Box
	inputs []textinput.Model // one per position; only editable ones are used
	style  Style
	title  string
	quit   bool

	keys keyMap
	help help.Model
	bar  progress.Model // fill indicator

	submitted bool
	cancelled bool
	lastErr   error
	width     int
}

// New creates a box model. It fails with a *segbox.ConfigError for templates
// without editable positions.
func New(cfg Config) (Model, error) {
	box, err := segbox.New(segbox.Config{
		Template: cfg.Template,
		Editable: cfg.Editable,
		Hidden:   cfg.Hidden,
		OnChange: cfg.OnChange,
	})
	if err != nil {
		return Model{}, err
	}

	style := DefaultStyle()
	if cfg.Style != nil {
		style = *cfg.Style
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	m := Model{
		box:    box,
		inputs: make([]textinput.Model, box.Len()),
		style:  style,
		title:  cfg.Title,
		quit:   cfg.QuitOnDone,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    bar,
	}

	tpl := box.Template()
	for _, i := range tpl.EditablePositions() {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = " "
		in.CharLimit = 1
		in.Width = 1
		m.inputs[i] = in
	}
	m.sync()

	logging.Debug("Box created")
	logging.LogValueChange(box.Value(), box.Focus())
	return m, nil
}

// Init starts the cursor blink of the focused cell
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key events to the box and keeps the cells in sync
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input-internal messages
	i := m.box.Focus()
	var cmd tea.Cmd
	m.inputs = cloneInputs(m.inputs)
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		logging.Info("Box cancelled")
		return m, m.finish(func() tea.Msg { return CancelledMsg{} })

	case key.Matches(msg, m.keys.Submit):
		m.submitted = true
		value, complete := m.box.Value(), m.box.Complete()
		logging.Info("Box submitted",
			zap.String("value", value),
			zap.Bool("complete", complete),
		)
		return m, m.finish(func() tea.Msg { return SubmittedMsg{Value: value, Complete: complete} })

	case key.Matches(msg, m.keys.Reset):
		return m.apply(m.box.Reset(), nil, true)

	case key.Matches(msg, m.keys.Next):
		return m.apply(m.box.FocusNext(), nil, false)

	case key.Matches(msg, m.keys.Prev):
		return m.apply(m.box.FocusPrev(), nil, false)
	}

	if k := boxKey(msg); k != segbox.KeyOther {
		focus := m.box.Focus()
		next, handled, err := m.box.HandleKey(focus, k)
		logging.LogKey(k.String(), focus, handled)
		return m.apply(next, err, k == segbox.KeyBackspace || k == segbox.KeyDelete)
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		return m.Input(msg.Runes...)
	case tea.KeySpace:
		return m.Input(' ')
	}

	return m, nil
}

// Input writes runes into consecutive cells starting at the focused one, as
// if each had been typed. Pasted text arrives here in one call. Non-printable
// runes such as newlines and tabs are dropped.
func (m Model) Input(runes ...rune) (Model, tea.Cmd) {
	printable := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsPrint(r) {
			printable = append(printable, r)
		}
	}
	if len(printable) == 0 {
		return m, nil
	}
	box := m.box
	var err error
	for _, r := range printable {
		box, err = box.HandleInput(box.Focus(), r)
		if err != nil {
			break
		}
	}
	return m.apply(box, err, true)
}

// FocusAt focuses the editable cell at index i, as a pointer click would.
func (m Model) FocusAt(i int) (Model, error) {
	box, err := m.box.FocusAt(i)
	if err != nil {
		return m, err
	}
	m, _ = m.apply(box, nil, false)
	return m, nil
}

// apply installs the next box state and returns the commands it implies.
func (m Model) apply(next segbox.Box, err error, mutated bool) (Model, tea.Cmd) {
	if err != nil {
		m.lastErr = err
		logging.LogRejected(m.box.Focus(), err)
		return m, nil
	}
	m.lastErr = nil

	prevFocus := m.box.Focus()
	logging.LogFocusChange(prevFocus, next.Focus())
	m.box = next
	m.inputs = cloneInputs(m.inputs)

	var cmds []tea.Cmd
	if cmd := m.sync(); cmd != nil && prevFocus != next.Focus() {
		cmds = append(cmds, cmd)
	}
	if mutated {
		value := next.Value()
		logging.LogValueChange(value, prevFocus)
		cmds = append(cmds, func() tea.Msg { return ValueChangedMsg{Value: value} })
	}
	return m, tea.Batch(cmds...)
}

// sync copies the box state into the cell inputs
func (m *Model) sync() tea.Cmd {
	var cmd tea.Cmd
	focus := m.box.Focus()
	for _, c := range m.box.Cells() {
		if c.Kind != segbox.CellEditable {
			continue
		}
		in := &m.inputs[c.Index]
		in.SetValue(c.Display)
		in.CursorStart()
		if c.Index == focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// cloneInputs copies the cell slice so earlier Model values keep their cells
func cloneInputs(in []textinput.Model) []textinput.Model {
	out := make([]textinput.Model, len(in))
	copy(out, in)
	return out
}

func (m Model) finish(msg tea.Cmd) tea.Cmd {
	if m.quit {
		return tea.Sequence(msg, tea.Quit)
	}
	return msg
}

// boxKey maps a key event to the keys the box handles itself
func boxKey(msg tea.KeyMsg) segbox.Key {
	switch msg.Type {
	case tea.KeyBackspace:
		return segbox.KeyBackspace
	case tea.KeyDelete:
		return segbox.KeyDelete
	case tea.KeyLeft:
		return segbox.KeyLeft
	case tea.KeyRight:
		return segbox.KeyRight
	default:
		return segbox.KeyOther
	}
}

// View renders the title, the cell row, a progress line and the help footer
func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.style.Title.Render(m.title))
		b.WriteString("\n")
	}

	b.WriteString(m.style.Container.Render(m.RenderCells()))
	b.WriteString("\n")

	filled, total := m.box.Filled(), m.box.Template().EditableCount()
	b.WriteString(m.bar.ViewAs(float64(filled) / float64(total)))
	b.WriteString(" ")
	b.WriteString(m.style.Status.Render(fmt.Sprintf("%d/%d filled", filled, total)))
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(m.style.Error.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RenderCells renders only the row of cells
func (m Model) RenderCells() string {
	cells := m.box.Cells()
	rendered := make([]string, 0, len(cells))
	for _, c := range cells {
		rendered = append(rendered, m.renderCell(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func (m Model) renderCell(c segbox.Cell) string {
	switch c.Kind {
	case segbox.CellHidden:
		return m.style.HiddenCell.Render(" ")
	case segbox.CellEditable:
		if c.Focused {
			return m.style.FocusedCell.Render(m.inputs[c.Index].View())
		}
		return m.style.Cell.Render(m.inputs[c.Index].View())
	default:
		return m.style.FixedCell.Render(c.Display)
	}
}

// Value returns the composed value
func (m Model) Value() string {
	return m.box.Value()
}

// Box returns the underlying box state
func (m Model) Box() segbox.Box {
	return m.box
}

// Focus returns the template index of the focused cell
func (m Model) Focus() int {
	return m.box.Focus()
}

// Submitted reports whether the user pressed enter
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user pressed esc or ctrl+c
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the last rejected edit, if any
func (m Model) Err() error {
	return m.lastErr
}
