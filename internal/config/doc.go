// Package config provides the segbox preset registry.
//
// Presets are named templates with their editable and hidden markers, stored
// in a YAML file together with display preferences. The file follows OS
// conventions for its location:
//   - Linux: $XDG_CONFIG_HOME/segbox/config.yaml or $HOME/.config/segbox/config.yaml
//   - macOS: $HOME/.config/segbox/config.yaml
//   - Windows: %LOCALAPPDATA%\segbox\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetPreset("pin", &config.Preset{
//	    Template: "____",
//	    Title:    "Enter PIN",
//	})
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// A registry loaded from an explicit path with LoadRegistryFrom saves back to
// that path.
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
