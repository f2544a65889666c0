package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terassyi/venueview/internal/config"
)

// VersionInfo describes the binary and the viewer defaults it was built with.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`

	Presets       []string `json:"presets"`
	DefaultPreset string   `json:"defaultPreset"`
	// ConfigFile is the config file the viewer would load, empty if none.
	ConfigFile string `json:"configFile,omitempty"`
}

func versionInfo() VersionInfo {
	return VersionInfo{
		Version:       version,
		Commit:        commit,
		BuildDate:     buildDate,
		GoVersion:     runtime.Version(),
		Platform:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Presets:       config.PresetNames(),
		DefaultPreset: config.Default().Preset,
		ConfigFile:    configPath(),
	}
}

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versionInfo()

		switch versionFormat {
		case outputJSON:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		default:
			cmd.Printf("venueview version %s\n", info.Version)
			cmd.Printf("  commit:    %s\n", info.Commit)
			cmd.Printf("  built:     %s\n", info.BuildDate)
			cmd.Printf("  go:        %s\n", info.GoVersion)
			cmd.Printf("  platform:  %s\n", info.Platform)
			cmd.Printf("  presets:   %s (default %s)\n", strings.Join(info.Presets, ", "), info.DefaultPreset)
			if info.ConfigFile != "" {
				cmd.Printf("  config:    %s\n", info.ConfigFile)
			}
			return nil
		}
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", "text", "Output format (text, json)")
}
