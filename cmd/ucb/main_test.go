package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ucb/internal/app"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports/mocks"
	"go.trai.ch/ucb/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	app    *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	tracer := mocks.NewMockTracer(ctrl)
	p := pipeline.New(pipeline.Deps{
		VCS:    mocks.NewMockVCS(ctrl),
		Stamps: mocks.NewMockStampStore(ctrl),
		Logger: h.logger,
		Tracer: tracer,
	})
	h.app = app.New(h.loader, p, h.logger, tracer, mocks.NewMockRenderer(ctrl))
	return h
}

func (h *harness) provider() ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: h.app, Logger: h.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), h.provider())

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "ucb version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_InvalidConfiguration verifies that conflicting modes fail before anything runs.
func TestRun_InvalidConfiguration(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Error(gomock.Cond(func(err error) bool {
		return errors.Is(err, domain.ErrInvalidConfiguration)
	}))

	exitCode := run(context.Background(),
		[]string{"sync", "--shallow", "--reset", "-C", t.TempDir()},
		new(bytes.Buffer), new(bytes.Buffer), h.provider())

	assert.Equal(t, 1, exitCode)
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()

	h.loader.EXPECT().Load(root).Return(domain.Settings{}, errors.New("load failed"))
	h.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"prepare", "-C", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider())

	assert.Equal(t, 1, exitCode)
}

// TestRun_Canceled verifies that a canceled context is reported as an interruption.
func TestRun_Canceled(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()

	h.loader.EXPECT().Load(root).Return(domain.Settings{}, context.Canceled)
	h.logger.EXPECT().Warn("interrupted")

	exitCode := run(context.Background(), []string{"status", "-C", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider())

	assert.Equal(t, 1, exitCode)
}
