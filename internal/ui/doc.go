// Package ui provides run-once terminal output for the segbox CLI.
//
// The interactive box lives in internal/segbox/tui. This package renders what
// the CLI prints around it: a header naming the preset, a result box with the
// submitted value, failure boxes with troubleshooting tips, and the prompt
// shown before overwriting a config file. Components render to strings so
// commands can print them through a Printer bound to any io.Writer.
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Enter code", "segbox --preset hello", []ui.Detail{
//	    {Key: "Template", Value: "__hello___"},
//	})
//	p.PrintSuccess("Code entered", []ui.Detail{{Key: "Value", Value: "ABhelloCDE"}})
package ui
