// Package linear renders pipeline progress as chronological, prefixed log lines.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/ucb/internal/ui/output"
	"go.trai.ch/ucb/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for terminals and CI logs alike.
// Status lines go to stderr; command output goes to stdout, one prefixed line at a time.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu     sync.Mutex
	stages map[string]*stageState
}

type stageState struct {
	name    string
	started time.Time
	partial bytes.Buffer
}

// NewRenderer creates a Renderer. Nil writers mean os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		stages: make(map[string]*stageState),
	}
}

// OnPlanEmit prints the stages about to run.
func (r *Renderer) OnPlanEmit(stages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning %d stage(s): %s\n",
		len(stages), strings.Join(stages, " "+style.Arrow+" "))
}

// OnStageStart prints a start line.
func (r *Renderer) OnStageStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = &stageState{name: name, started: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStageLog prints every complete line of data and keeps the remainder.
func (r *Renderer) OnStageLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stages[spanID]
	if !ok {
		return
	}

	st.partial.Write(data)
	for {
		rest := st.partial.Bytes()
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		r.printLineLocked(st.name, rest[:i])
		st.partial.Next(i + 1)
	}
}

// OnStageComplete flushes the remainder and prints the outcome.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stages[spanID]
	if !ok {
		return
	}
	r.flushLocked(st)

	duration := endTime.Sub(st.started).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", st.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.stages, spanID)
}

// Stop prints any output still buffered for unfinished stages.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, st := range r.stages {
		r.flushLocked(st)
	}
	return nil
}

func (r *Renderer) flushLocked(st *stageState) {
	if st.partial.Len() > 0 {
		r.printLineLocked(st.name, st.partial.Bytes())
		st.partial.Reset()
	}
}

// printLineLocked must be called with r.mu held.
// Carriage returns from progress output keep only the last redraw.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if i := bytes.LastIndexByte(line, '\r'); i >= 0 {
		line = line[i+1:]
	}
	if len(bytes.TrimSpace(line)) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}
