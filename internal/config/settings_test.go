package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptSettingsDefaults(t *testing.T) {
	s := PromptSettings{}
	assert.True(t, s.IsEnabled(), "prompt should be enabled by default")
	assert.Equal(t, "[", s.GetBeforeStatus())
	assert.Equal(t, "]", s.GetAfterStatus())

	off := false
	s.Enabled = &off
	assert.False(t, s.IsEnabled())

	s.BeforeStatus = "("
	s.AfterStatus = ")"
	assert.Equal(t, "(", s.GetBeforeStatus())
	assert.Equal(t, ")", s.GetAfterStatus())
}

func TestFileStatusSettingsDefaults(t *testing.T) {
	s := FileStatusSettings{}
	assert.True(t, s.IsEnabled(), "file status should be enabled by default")

	off := false
	s.Enabled = &off
	assert.False(t, s.IsEnabled())
}

func TestLoggingSettingsDefaults(t *testing.T) {
	s := LoggingSettings{}
	assert.True(t, s.IsFileEnabled())
	assert.Equal(t, 10, s.GetMaxSizeMB())
	assert.Equal(t, 7, s.GetMaxAgeDays())
	assert.Equal(t, 3, s.GetMaxBackups())

	s = LoggingSettings{MaxSizeMB: 25, MaxAgeDays: 30, MaxBackups: 9}
	assert.Equal(t, 25, s.GetMaxSizeMB())
	assert.Equal(t, 30, s.GetMaxAgeDays())
	assert.Equal(t, 9, s.GetMaxBackups())
}
