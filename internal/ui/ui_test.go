package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		width int
		err   error
		want  int
	}{
		{80, nil, 80},
		{10, nil, MinTerminalWidth},
		{500, nil, MaxContentWidth},
		{80, errors.New("not a terminal"), MinTerminalWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.width, tt.err); got != tt.want {
			t.Errorf("clampWidth(%d, %v) = %d, want %d", tt.width, tt.err, got, tt.want)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Enter code", "segbox --preset hello", []Detail{
		{Key: "Template", Value: "__hello___"},
	}).SetWidth(60).Render()

	for _, want := range []string{"ENTER CODE", "segbox --preset hello", "Template:", "__hello___"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestResultRender(t *testing.T) {
	success := NewSuccessResult("Code entered", nil).AddDetail("Value", "ABhelloCDE").SetWidth(60).Render()
	if !strings.Contains(success, "SUCCESS") || !strings.Contains(success, "ABhelloCDE") {
		t.Errorf("success box:\n%s", success)
	}

	failure := NewFailureResult("Invalid template", errors.New("no editable positions"), []string{"Add a _ to the template"}).
		SetWidth(60).Render()
	for _, want := range []string{"FAILED", "no editable positions", "Troubleshooting:", "Add a _"} {
		if !strings.Contains(failure, want) {
			t.Errorf("failure box missing %q:\n%s", want, failure)
		}
	}

	warning := NewWarningResult("Incomplete", []Detail{{Key: "Filled", Value: "2/5"}}).SetWidth(60).Render()
	if !strings.Contains(warning, "WARNING") || !strings.Contains(warning, "2/5") {
		t.Errorf("warning box:\n%s", warning)
	}
}

func TestDetailsKeepOrder(t *testing.T) {
	out := NewSuccessResult("Done", []Detail{
		{Key: "First", Value: "1"},
		{Key: "Second", Value: "2"},
		{Key: "Third", Value: "3"},
	}).SetWidth(60).Render()

	first, second, third := strings.Index(out, "First"), strings.Index(out, "Second"), strings.Index(out, "Third")
	if !(first < second && second < third) {
		t.Errorf("details out of order:\n%s", out)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true}, // no trailing newline
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "/tmp/config.yaml")
		if got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "/tmp/config.yaml") {
			t.Errorf("prompt should name the file:\n%s", out.String())
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithWidth(50)
	p.PrintSuccess("Saved", []Detail{{Key: "Path", Value: "/tmp/x"}})
	p.PrintResult(NewWarningResult("Incomplete", nil).AddDetail("Filled", "2/5"))
	p.PrintMuted("done")

	if p.Width() != 50 {
		t.Errorf("Width() = %d, want 50", p.Width())
	}
	if !strings.Contains(buf.String(), "/tmp/x") || !strings.Contains(buf.String(), "2/5") || !strings.Contains(buf.String(), "done") {
		t.Errorf("printer output:\n%s", buf.String())
	}
}
