package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/venueview/internal/config"
)

func TestVersionInfo(t *testing.T) {
	info := versionInfo()
	assert.Equal(t, version, info.Version)
	assert.Equal(t, config.PresetClassic, info.DefaultPreset)
	assert.Equal(t, []string{config.PresetClassic, config.PresetCompact}, info.Presets)
}

func TestVersionCmd_JSON(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		versionFormat = "text"
	})
	versionFormat = outputJSON

	require.NoError(t, versionCmd.RunE(versionCmd, nil))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, config.PresetClassic, info.DefaultPreset)
	assert.NotEmpty(t, info.GoVersion)
}
