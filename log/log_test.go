// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextResolvesLateHandler(t *testing.T) {
	logger := WithContext("pkg", "test")

	var buf bytes.Buffer
	SetDefault(JSONHandler(&buf))
	defer SetDefault(DiscardHandler())
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelInfo)

	logger.With("op", "bury").Debug("buried", "amount", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "buried", rec["msg"])
	assert.Equal(t, "test", rec["pkg"])
	assert.Equal(t, "bury", rec["op"])
	assert.Equal(t, float64(5), rec["amount"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewTerminalHandler(&buf))
	defer SetDefault(DiscardHandler())
	SetLevel(slog.LevelWarn)
	defer SetLevel(slog.LevelInfo)

	l := WithContext("pkg", "test")
	l.Info("hidden")
	assert.Zero(t, buf.Len())
	assert.False(t, l.Enabled(slog.LevelInfo))

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "pkg=test")
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelError, LevelFromVerbosity(0))
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(2))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(3))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(5))
}
