package pipeline

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/ucb/internal/core/domain"
	"go.trai.ch/ucb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded by the prepare stage.
const (
	StepCheckout     = "checkout"
	StepClearCache   = "clear-cache"
	StepFixup        = "fixup"
	StepPrune        = "prune"
	StepPatch        = "patch"
	StepSubstitute   = "substitute"
	StepSecondPrune  = "prune-2"
	StepSecondPatch  = "patch-2"
	StepSecondSubst  = "substitute-2"
	StepExtraPatches = "patch-extra"
)

// Preparer applies the ungoogled-chromium patches and domain substitution to src.
type Preparer struct {
	patch    ports.PatchTool
	acquirer *Acquirer
	vcs      ports.VCS
	stamps   ports.StampStore
	logger   ports.Logger
	tracer   ports.Tracer
	now      func() time.Time
}

// NewPreparer creates a Preparer.
func NewPreparer(
	patch ports.PatchTool,
	acquirer *Acquirer,
	vcs ports.VCS,
	stamps ports.StampStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Preparer {
	return &Preparer{
		patch:    patch,
		acquirer: acquirer,
		vcs:      vcs,
		stamps:   stamps,
		logger:   logger,
		tracer:   tracer,
		now:      time.Now,
	}
}

// Prepare runs the patch and substitution steps in order and stamps the tree.
// A tree prepared since its last fresh acquisition is rejected.
func (p *Preparer) Prepare(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) (domain.PrepareReport, error) {
	var report domain.PrepareReport
	l := cfg.Layout()

	stamp, err := p.stamps.Get(l.StampDir(), domain.PrepareStampName)
	if err != nil {
		return report, err
	}
	if stamp != nil {
		return report, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrTreeAlreadyPrepared, "prepare"), "prepared_at", stamp.Timestamp.Format(time.RFC3339)),
			"stamp", filepath.Join(l.StampDir(), domain.PrepareStampName),
		)
	}

	if err := p.checkoutPatchRepos(ctx, cfg, profile); err != nil {
		return report, err
	}
	report.Steps = append(report.Steps, domain.Succeeded(StepCheckout))

	run := &prepareRun{p: p, cfg: cfg, profile: profile, report: &report}
	if err := inSpan(ctx, p.tracer, "patch", run.primary); err != nil {
		return report, err
	}
	if profile.SecondPass != nil {
		if err := inSpan(ctx, p.tracer, "patch overlay", run.second); err != nil {
			return report, err
		}
	}

	stamp = &domain.Stamp{
		Name:        domain.PrepareStampName,
		OS:          cfg.OS,
		Fingerprint: Fingerprint(cfg.Root, profile),
		Steps:       report.Steps,
		Timestamp:   p.now().UTC(),
	}
	p.sourceIdentity(ctx, cfg, stamp)
	if err := p.stamps.Put(l.StampDir(), *stamp); err != nil {
		return report, zerr.Wrap(err, "prepare: write stamp")
	}
	return report, nil
}

// checkoutPatchRepos resets the patch repositories to their pinned revisions.
func (p *Preparer) checkoutPatchRepos(ctx context.Context, cfg domain.BuildConfig, profile domain.PlatformProfile) error {
	for _, dir := range profile.PatchCheckouts {
		co := cfg.Settings().CheckoutFor(dir)
		path := cfg.Layout().Path(dir)

		res, err := p.acquirer.Acquire(ctx, domain.AcquireRequest{
			Remote:   co.Remote,
			Path:     path,
			Revision: co.Revision,
			Reset:    true,
		})
		if err != nil {
			return zerr.Wrap(err, "prepare: checkout "+dir)
		}
		if res.Action.Fresh() {
			continue
		}
		if err := p.vcs.Clean(ctx, path); err != nil {
			return zerr.Wrap(err, "prepare: clean "+dir)
		}
		if err := p.vcs.ResetHard(ctx, path); err != nil {
			return zerr.Wrap(err, "prepare: reset "+dir)
		}
	}
	return nil
}

// sourceIdentity records what src was built from: the tarball digest or the git HEAD.
func (p *Preparer) sourceIdentity(ctx context.Context, cfg domain.BuildConfig, stamp *domain.Stamp) {
	l := cfg.Layout()
	if cfg.DirectDownload {
		if dl, err := p.stamps.Get(l.StampDir(), domain.DownloadStampName); err == nil && dl != nil {
			stamp.Revision, stamp.Digest = dl.Revision, dl.Digest
			return
		}
	}
	rev, err := p.vcs.Head(ctx, l.Src())
	if err != nil {
		p.logger.Debug("src has no git HEAD: " + err.Error())
		return
	}
	stamp.Revision = rev
}

type prepareRun struct {
	p       *Preparer
	cfg     domain.BuildConfig
	profile domain.PlatformProfile
	report  *domain.PrepareReport
}

func (r *prepareRun) add(step domain.StepResult) {
	r.report.Steps = append(r.report.Steps, step)
}

func (r *prepareRun) clearCache() error {
	cache := r.cfg.Layout().DomSubCache()
	if err := removeFile(cache); err != nil {
		return zerr.With(zerr.Wrap(err, "prepare: delete substitution cache"), "path", cache)
	}
	return nil
}

// prune runs the prune script and tolerates its failure; it exits non-zero for files already gone.
func (r *prepareRun) prune(ctx context.Context, step, list string, excludes []string) error {
	filtered, err := WriteFilteredList(r.cfg.Root, list, excludes)
	if err != nil {
		return zerr.Wrap(err, "prepare: "+step)
	}
	if err := r.p.patch.Prune(ctx, r.cfg.Root, r.profile.UtilsDir(), domain.SrcDirName, filtered); err != nil {
		r.p.logger.Warn("pruning reported errors, continuing: " + err.Error())
		r.add(domain.Tolerated(step, err))
		return nil
	}
	r.add(domain.Succeeded(step))
	return nil
}

func (r *prepareRun) apply(ctx context.Context, step, dir, patchBin string) error {
	opts := domain.PatchOptions{BestEffort: r.cfg.BestEffortPatches, PatchBin: patchBin}
	pr, err := r.p.patch.ApplySeries(ctx, r.cfg.Root, r.profile.UtilsDir(), domain.SrcDirName, dir, opts)
	r.report.Patches = append(r.report.Patches, pr)
	if err != nil {
		return zerr.Wrap(err, "prepare: apply patches")
	}
	if len(pr.Skipped) > 0 {
		r.add(domain.StepResult{
			Step:   step,
			Status: domain.StepTolerated,
			Detail: filepath.Base(dir) + ": skipped " + strconv.Itoa(len(pr.Skipped)) + " patch(es)",
		})
		return nil
	}
	r.add(domain.Succeeded(step))
	return nil
}

func (r *prepareRun) substitute(ctx context.Context, step, list string) error {
	filtered, err := WriteFilteredList(r.cfg.Root, list, nil)
	if err != nil {
		return zerr.Wrap(err, "prepare: "+step)
	}
	req := domain.SubstitutionRequest{
		RegexList: r.profile.DomainRegexList(),
		FileList:  filtered,
		CacheFile: domain.DomSubCacheName,
	}
	if err := r.p.patch.SubstituteDomains(ctx, r.cfg.Root, r.profile.UtilsDir(), domain.SrcDirName, req); err != nil {
		return zerr.Wrap(err, "prepare: domain substitution")
	}
	r.add(domain.Succeeded(step))
	return nil
}

func (r *prepareRun) primary(ctx context.Context) error {
	if err := r.clearCache(); err != nil {
		return err
	}
	r.add(domain.Succeeded(StepClearCache))

	if r.profile.FixupPatch != "" {
		if err := r.p.patch.ApplyFixup(ctx, r.cfg.Root, r.profile.FixupPatch); err != nil {
			return zerr.Wrap(err, "prepare: fix-up patch")
		}
		r.add(domain.Succeeded(StepFixup))
	}

	if err := r.prune(ctx, StepPrune, r.profile.PruneList(), domain.PruneExcludes); err != nil {
		return err
	}
	if err := r.apply(ctx, StepPatch, r.profile.PatchDir(), r.profile.PatchBin); err != nil {
		return err
	}
	for _, dir := range r.profile.ExtraPatchDirs {
		if err := r.apply(ctx, StepExtraPatches, dir, r.profile.PatchBin); err != nil {
			return err
		}
	}
	return r.substitute(ctx, StepSubstitute, r.profile.SubstitutionList())
}

func (r *prepareRun) second(ctx context.Context) error {
	pass := r.profile.SecondPass
	if err := r.clearCache(); err != nil {
		return err
	}
	if err := r.prune(ctx, StepSecondPrune, pass.PruneList, nil); err != nil {
		return err
	}
	if err := r.apply(ctx, StepSecondPatch, pass.PatchDir, ""); err != nil {
		return err
	}
	return r.substitute(ctx, StepSecondSubst, pass.SubstitutionList)
}
