// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetupVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, true)

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", logger.GetLevel())
	}

	logger.Debug("probe")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}

func TestSetupDefaultsToWarn(t *testing.T) {
	t.Setenv(EnvLevel, "")

	var buf bytes.Buffer
	logger := Setup(&buf, false)

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %v", logger.GetLevel())
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info should be suppressed at warn level, got %q", buf.String())
	}
}

func TestSetupHonorsEnvLevel(t *testing.T) {
	t.Setenv(EnvLevel, "info")

	var buf bytes.Buffer
	logger := Setup(&buf, false)

	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", logger.GetLevel())
	}
}

func TestSetupIgnoresBadEnvLevel(t *testing.T) {
	t.Setenv(EnvLevel, "shouty")

	var buf bytes.Buffer
	logger := Setup(&buf, false)

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("expected fallback to warn, got %v", logger.GetLevel())
	}
}
