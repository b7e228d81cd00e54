package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/logger"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("syncing src")
	l.Warn("distro not supported")
	l.Debug("hidden")

	assert.Equal(t, "syncing src\n! distro not supported\n", buf.String())

	buf.Reset()
	l.SetVerbose(true)
	l.Debug("$ git fetch --tags origin")
	assert.Equal(t, "· $ git fetch --tags origin\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newTestLogger(t)

	cmdErr := zerr.With(zerr.Wrap(errors.New("exit status 1"), "command failed"), "exit_code", 1)
	err := zerr.With(zerr.Wrap(cmdErr, "sync: gclient sync"), "stage", "sync")

	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Error(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "build: gn gen"), "exit_code", 2))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "build: gn gen", record["msg"])
	assert.Equal(t, "build: gn gen: command failed", record["error"])
	assert.InDelta(t, 2, record["exit_code"], 0)
}

func TestLogger_JSONKeepsOutput(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)
	l.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
