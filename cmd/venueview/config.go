package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/terassyi/venueview/internal/config"
)

// configPath returns the explicit --config path, or the default path if a
// file exists there.
func configPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	p, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// flagOverrides collects only the flags set on the command line.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	str := func(name string, v *string) *string {
		if flags.Changed(name) {
			return v
		}
		return nil
	}
	o.Preset = str("preset", &globalOpts.preset)
	o.ColorPolicy = str("color-policy", &globalOpts.colorPolicy)
	o.Scheme = str("scheme", &globalOpts.scheme)
	o.Show = str("show", &globalOpts.show)
	o.LogLevel = str("log-level", &globalOpts.logLevel)
	if flags.Lookup("audit-dir") != nil {
		o.AuditDir = str("audit-dir", &viewOpts.auditDir)
	}
	if flags.Lookup("speed") != nil && flags.Changed("speed") {
		o.Speed = &viewOpts.speed
	}
	return o
}

// resolveConfig builds the effective configuration:
// defaults < preset < config file < explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath()
	cfg, err := config.ResolveFile(path, flagOverrides(cmd))
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved config", "file", path, "preset", cfg.Preset, "speed", cfg.Speed)
	return cfg, nil
}
