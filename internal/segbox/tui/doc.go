// Package tui renders a segmented input box as a Bubble Tea component.
//
// Model wraps a segbox.Box. Every editable position is a one-character
// textinput; fixed positions render their literal and hidden positions render
// a blank gap. Key events are routed to the box:
//
//	Printable runes   write the focused cell and move right
//	Backspace/Delete  clear the focused cell and move left
//	Left/Right        move between editable cells
//	Tab/Shift+Tab     same as Right/Left
//	Ctrl+U            clear every cell
//	Enter             submit
//	Esc/Ctrl+C        cancel
//
// The model can run standalone (Config.QuitOnDone) or be embedded in a parent
// model, which observes ValueChangedMsg, SubmittedMsg and CancelledMsg.
//
//	m, err := tui.New(tui.Config{
//	    Template:   "__hello___",
//	    Editable:   '_',
//	    Hidden:     ' ',
//	    QuitOnDone: true,
//	    OnChange:   func(v string) { log.Println(v) },
//	})
//	if err != nil {
//	    return err
//	}
//	final, err := tea.NewProgram(m).Run()
package tui
