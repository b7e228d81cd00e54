package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/ucb/internal/adapters/host" //nolint:depguard // FormatBytes is presentation only
	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/ui/style"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(style.Slate).Width(14)
	okStyle    = lipgloss.NewStyle().Foreground(style.Green)
	warnStyle  = lipgloss.NewStyle().Foreground(style.Yellow)
	missStyle  = lipgloss.NewStyle().Foreground(style.Red)
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context(), c.invocation())
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printStatus(w io.Writer, r domain.StatusReport) {
	line := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), value)
	}

	line("root", r.Root)
	for _, repo := range r.Repos {
		line(filepath.Base(repo.Path), repoSummary(repo))
	}

	if r.Prepared == nil {
		line("prepared", missStyle.Render("no"))
	} else {
		prepared := okStyle.Render(style.Check) + " " + r.Prepared.Timestamp.Format("2006-01-02 15:04")
		if r.Prepared.Fingerprint != "" {
			prepared += " " + style.Dot + " " + r.Prepared.Fingerprint
		}
		line("prepared", prepared)
	}

	if r.Downloaded != nil {
		line("tarball", okStyle.Render(style.Check)+" "+r.Downloaded.Revision)
	}

	if r.CacheFiles < 0 {
		line("domsubcache", missStyle.Render("absent"))
	} else {
		line("domsubcache", fmt.Sprintf("%d files", r.CacheFiles))
	}

	args := missStyle.Render("no args.gn")
	if r.ArgsFile {
		args = okStyle.Render("args.gn")
	}
	line("output", r.OutputPath+" "+style.Dot+" "+args)

	if r.FreeBytes > 0 {
		line("free", host.FormatBytes(r.FreeBytes))
	}
}

func repoSummary(s domain.RepoState) string {
	if !s.Exists() {
		return missStyle.Render(s.Kind.String())
	}
	if !s.Valid() {
		return warnStyle.Render(s.Kind.String())
	}

	rev := s.Revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	summary := s.Kind.String() + " " + style.Dot + " " + rev
	if s.Tag != "" {
		summary += " (" + s.Tag + ")"
	}
	if s.MatchesTarget {
		return okStyle.Render(style.Check) + " " + summary
	}
	return warnStyle.Render(style.Warning) + " " + summary
}
