// Package smoke launches a built browser headless to check that it starts.
package smoke

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a single smoke run.
const DefaultTimeout = 60 * time.Second

var _ ports.SmokeTester = (*Tester)(nil)

// Tester implements ports.SmokeTester with chromedp.
type Tester struct {
	logger  ports.Logger
	timeout time.Duration
}

// New creates a Tester.
func New(logger ports.Logger) *Tester {
	return &Tester{logger: logger, timeout: DefaultTimeout}
}

// Smoke starts binary headless, opens about:blank and reads navigator.userAgent.
func (t *Tester) Smoke(ctx context.Context, binary string) (domain.SmokeReport, error) {
	report := domain.SmokeReport{Binary: binary}

	info, err := os.Stat(binary)
	if err != nil {
		return report, zerr.With(zerr.Wrap(domain.ErrSmokeTestFailed, err.Error()), "binary", binary)
	}
	if info.IsDir() {
		return report, zerr.With(zerr.Wrap(domain.ErrSmokeTestFailed, "not an executable"), "binary", binary)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:], //nolint:gocritic // fresh slice from a fixed array
		chromedp.ExecPath(binary),
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	t.logger.Debug("launching " + binary + " headless")

	var ua string
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.Evaluate("navigator.userAgent", &ua),
	); err != nil {
		return report, zerr.With(zerr.Wrap(domain.ErrSmokeTestFailed, err.Error()), "binary", binary)
	}

	report.UserAgent = strings.TrimSpace(ua)
	if report.UserAgent == "" {
		return report, zerr.With(zerr.Wrap(domain.ErrSmokeTestFailed, "empty user agent"), "binary", binary)
	}
	return report, nil
}
