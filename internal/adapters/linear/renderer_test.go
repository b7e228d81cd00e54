package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/linear"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	return linear.NewRenderer(&stdout, &stderr), &stdout, &stderr
}

func TestRenderer_Golden(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	r := linear.NewRenderer(&out, &out)
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	r.OnPlanEmit([]string{"sync", "prepare"})

	r.OnStageStart("s1", "", "sync", t0)
	r.OnStageLog("s1", []byte("cloning\npart"))
	r.OnStageLog("s1", []byte("ial\r\n"))
	r.OnStageLog("s1", []byte("[1/3]\r[3/3]\n\n"))
	r.OnStageComplete("s1", t0.Add(1500*time.Millisecond), nil)

	r.OnStageStart("s2", "", "prepare", t0)
	r.OnStageLog("s2", []byte("no newline"))
	r.OnStageComplete("s2", t0.Add(250*time.Millisecond), errors.New("patch failed"))

	require.NoError(t, r.Stop())

	g := goldie.New(t)
	g.Assert(t, "lifecycle", out.Bytes())
}

func TestRenderer_StreamsSeparated(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnStageStart("s1", "", "gn gen", time.Now())
	r.OnStageLog("s1", []byte("Done. Made 20000 targets\n"))

	assert.Equal(t, "[gn gen] Done. Made 20000 targets\n", stdout.String())
	assert.Equal(t, "[gn gen] Starting...\n", stderr.String())
}

func TestRenderer_UnknownSpanIgnored(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnStageLog("missing", []byte("x\n"))
	r.OnStageComplete("missing", time.Now(), nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_StopFlushesPartialLines(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	r.OnStageStart("s1", "", "ninja", time.Now())
	r.OnStageLog("s1", []byte("[42/100] LINK chrome"))
	assert.Empty(t, stdout.String())

	require.NoError(t, r.Stop())
	assert.Equal(t, "[ninja] [42/100] LINK chrome\n", stdout.String())
}
