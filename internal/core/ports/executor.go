package ports

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd and streams its output into a span named after the command.
	// A non-zero exit is reported as domain.ErrCommandFailed.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes cmd and captures its output.
	// A non-zero exit is reported through CommandOutput.ExitCode, not as an error.
	Output(ctx context.Context, cmd domain.Command) (domain.CommandOutput, error)
}
