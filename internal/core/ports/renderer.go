package ports

import "time"

// Renderer presents pipeline progress.
// It is fed by span start and end events and by command output written to spans.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called with the stages about to run, in order.
	OnPlanEmit(stages []string)

	// OnStageStart is called when a span begins.
	OnStageStart(spanID, parentID, name string, startTime time.Time)

	// OnStageLog is called with raw output written to a span.
	OnStageLog(spanID string, data []byte)

	// OnStageComplete is called when a span ends. err is nil on success.
	OnStageComplete(spanID string, endTime time.Time, err error)

	// Stop flushes buffered output.
	Stop() error
}
