package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/segbox/internal/config"
	"github.com/muurk/segbox/internal/logging"
	"github.com/muurk/segbox/internal/segbox/tui"
	"github.com/muurk/segbox/internal/ui"
)

// errCancelled is returned when the user leaves the box with esc or ctrl+c
var errCancelled = errors.New("cancelled")

// Output formats for the submitted value
const (
	formatDetailed = "detailed"
	formatPlain    = "plain"
	formatJSON     = "json"
)

// boxOptions holds the flags that select and shape a box
type boxOptions struct {
	configPath string
	preset     string
	template   string
	editable   string
	hidden     string
	title      string

	// set when the flag was given explicitly
	editableSet bool
	hiddenSet   bool
}

var (
	opts            boxOptions
	outputFormat    string
	requireComplete bool
	forceInit       bool

	presetDescription string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default is the OS config dir)")
	flags.StringVarP(&opts.preset, "preset", "p", "", "Preset name (default from config)")
	flags.StringVarP(&opts.template, "template", "t", "", "Template, overrides --preset")
	flags.StringVar(&opts.editable, "editable", "", "Editable marker character (default \"_\")")
	flags.StringVar(&opts.hidden, "hidden", "", "Hidden marker character (default \" \", or \"_\" when --editable is \" \")")
	flags.StringVar(&opts.title, "title", "", "Title shown above the box")

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", formatDetailed, "Output format (detailed, plain, json)")
		c.Flags().BoolVar(&requireComplete, "require-complete", false, "Fail if the box is submitted with empty cells")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsAddCmd)
	presetsCmd.AddCommand(presetsRemoveCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")

	presetsAddCmd.Flags().StringVar(&presetDescription, "description", "", "Description shown by 'segbox presets'")
}

// runCmd is the explicit form of running segbox without a command
var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Open the box and print the entered value",
	Example: `  segbox run --preset otp --format plain`,
	RunE:    runBox,
}

// loadRegistry loads the registry from --config or the default location
func (o boxOptions) loadRegistry() (*config.Registry, error) {
	if o.configPath != "" {
		return config.LoadRegistryFrom(o.configPath)
	}
	return config.LoadRegistry()
}

// resolve picks the preset to run: an ad-hoc --template, or a named preset
// with marker flags layered on top.
func (o boxOptions) resolve(reg *config.Registry) (*config.Preset, error) {
	var p config.Preset
	if o.template != "" {
		p = config.Preset{Template: o.template}
	} else {
		named, err := reg.ResolvePreset(o.preset)
		if err != nil {
			return nil, err
		}
		p = *named
	}

	if o.editableSet {
		p.Editable = o.editable
	}
	if o.hiddenSet {
		p.Hidden = o.hidden
	}
	if o.title != "" {
		p.Title = o.title
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// styleFromConfig converts the config style into the box style
func styleFromConfig(s config.StyleSpec) tui.Style {
	return tui.NewStyle(tui.StyleOptions{
		Border:      s.Border,
		BorderColor: s.BorderColor,
		CellColor:   s.CellColor,
		FocusColor:  s.FocusColor,
		FixedColor:  s.FixedColor,
		Padding:     s.Padding,
	})
}

// newModel builds the box model for the resolved preset
func newModel(cmd *cobra.Command, quitOnDone bool) (tui.Model, *config.Preset, error) {
	o := opts
	o.editableSet = cmd.Flags().Changed("editable")
	o.hiddenSet = cmd.Flags().Changed("hidden")

	reg, err := o.loadRegistry()
	if err != nil {
		return tui.Model{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	preset, err := o.resolve(reg)
	if err != nil {
		return tui.Model{}, nil, err
	}

	editable, hidden, err := preset.Markers()
	if err != nil {
		return tui.Model{}, nil, err
	}

	style := styleFromConfig(reg.Style())
	m, err := tui.New(tui.Config{
		Template:   preset.Template,
		Editable:   editable,
		Hidden:     hidden,
		Style:      &style,
		Title:      preset.Title,
		QuitOnDone: quitOnDone,
		OnChange: func(v string) {
			logging.Debug("onChange", zap.String("value", v))
		},
	})
	if err != nil {
		return tui.Model{}, nil, err
	}
	return m, preset, nil
}

func runBox(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case formatDetailed, formatPlain, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want detailed, plain or json)", outputFormat)
	}

	m, preset, err := newModel(cmd, true)
	if err != nil {
		return err
	}

	if !ui.IsTerminal(os.Stdin) {
		return errors.New("segbox needs an interactive terminal; use 'segbox preview' to render a box")
	}

	logging.Info("Starting box",
		zap.String("template", preset.Template),
		zap.String("format", outputFormat),
	)

	// Keep stdout for the value when scripting
	programOut := os.Stdout
	if outputFormat != formatDetailed {
		programOut = os.Stderr
	}

	final, err := tea.NewProgram(m, tea.WithOutput(programOut)).Run()
	if err != nil {
		return fmt.Errorf("box failed: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok || result.Cancelled() || !result.Submitted() {
		ui.NewPrinter(os.Stderr).PrintMuted("Cancelled.")
		return errCancelled
	}

	box := result.Box()
	if requireComplete && !box.Complete() {
		return fmt.Errorf("%d of %d cells are empty", box.Template().EditableCount()-box.Filled(), box.Template().EditableCount())
	}

	return writeResult(cmd.OutOrStdout(), outputFormat, newSubmission(result))
}

// submission is the printed result of a submitted box
type submission struct {
	Value    string `json:"value"`
	Entered  string `json:"entered"`
	Complete bool   `json:"complete"`
	Filled   int    `json:"filled"`
	Total    int    `json:"total"`
}

func newSubmission(m tui.Model) submission {
	box := m.Box()
	return submission{
		Value:    box.Value(),
		Entered:  box.Entered(),
		Complete: box.Complete(),
		Filled:   box.Filled(),
		Total:    box.Template().EditableCount(),
	}
}

func writeResult(w io.Writer, format string, s submission) error {
	switch format {
	case formatPlain:
		_, err := fmt.Fprintln(w, s.Value)
		return err

	case formatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	default:
		var result *ui.Result
		if s.Complete {
			result = ui.NewSuccessResult("Value entered", nil)
		} else {
			result = ui.NewWarningResult("Submitted with empty cells", nil)
		}
		result.
			AddDetail("Value", s.Value).
			AddDetail("Entered", s.Entered).
			AddDetail("Filled", fmt.Sprintf("%d/%d", s.Filled, s.Total))

		ui.NewPrinter(w).PrintResult(result)
		return nil
	}
}

// previewCmd renders the box once without reading input
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the box without opening it",
	Long: `Render the box for a preset or template once and exit.

Useful to check a template and the configured style without entering a value.`,
	Example: `  segbox preview --preset license
  segbox preview --template "__:__"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, preset, err := newModel(cmd, false)
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintHeader(titleOr(preset.Title, "Preview"), "segbox preview", presetDetails(preset))
		p.Println(m.View())
		return nil
	},
}

// presetsCmd lists presets from the registry
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List configured presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := opts.loadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return writePresets(cmd.OutOrStdout(), reg)
	},
}

func writePresets(w io.Writer, reg *config.Registry) error {
	names := reg.PresetNames()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No presets configured. Run 'segbox config init' to create the defaults.")
		return err
	}

	defaultName := ""
	if reg.Preferences != nil {
		defaultName = reg.Preferences.DefaultPreset
	}

	var b strings.Builder
	for _, name := range names {
		p := reg.GetPreset(name)
		marker := " "
		if name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-10s %q\n", marker, name, p.Template)
		if p.Description != "" {
			fmt.Fprintf(&b, "  %-10s %s\n", "", p.Description)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

var presetsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Save --template and the marker flags as a named preset",
	Example: `  segbox presets add pin --template "____" --title "PIN"
  segbox presets add time --template "##:##" --editable "#"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.template == "" {
			return errors.New("--template is required")
		}

		reg, err := opts.loadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		preset := newPreset(opts, presetDescription)
		if err := preset.Validate(); err != nil {
			return err
		}

		reg.SetPreset(args[0], preset)
		if err := reg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		path, _ := reg.Path()
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preset saved", []ui.Detail{
			{Key: "Name", Value: args[0]},
			{Key: "Template", Value: fmt.Sprintf("%q", preset.Template)},
			{Key: "Config", Value: path},
		})
		return nil
	},
}

var presetsRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Delete a named preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := opts.loadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := removePreset(reg, args[0]); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintMuted(fmt.Sprintf("Removed preset %q.", args[0]))
		return nil
	},
}

// newPreset builds a preset from the box flags
func newPreset(o boxOptions, description string) *config.Preset {
	return &config.Preset{
		Template:    o.template,
		Editable:    o.editable,
		Hidden:      o.hidden,
		Title:       o.title,
		Description: description,
	}
}

// removePreset deletes name, refusing to drop the default preset
func removePreset(reg *config.Registry, name string) error {
	if reg.Preferences != nil && reg.Preferences.DefaultPreset == name {
		return fmt.Errorf("preset %q is the default_preset; change preferences first", name)
	}
	if !reg.RemovePreset(name) {
		return fmt.Errorf("unknown preset %q", name)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the segbox config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if config.Exists(path) && !forceInit {
			if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), path) {
				return nil
			}
		}

		reg, err := config.CreateDefaultConfig(path)
		if err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config written", []ui.Detail{
			{Key: "Path", Value: path},
			{Key: "Presets", Value: strings.Join(reg.PresetNames(), ", ")},
		})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func configPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.GetConfigPath()
}

func presetDetails(p *config.Preset) []ui.Detail {
	editable, hidden, _ := p.Markers()
	return []ui.Detail{
		{Key: "Template", Value: fmt.Sprintf("%q", p.Template)},
		{Key: "Editable", Value: fmt.Sprintf("%q", editable)},
		{Key: "Hidden", Value: fmt.Sprintf("%q", hidden)},
	}
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
