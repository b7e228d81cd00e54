package pipeline

import "go.trai.ch/ucb/internal/core/ports"

// Deps are the collaborators shared by every stage.
type Deps struct {
	VCS       ports.VCS
	GClient   ports.DependencyFetcher
	Patch     ports.PatchTool
	Downloads ports.DownloadsTool
	Build     ports.BuildSystem
	Exec      ports.Executor
	Fetcher   ports.Fetcher
	Archiver  ports.Archiver
	Smoke     ports.SmokeTester
	Distro    ports.DistroDetector
	Disk      ports.DiskProbe
	Stamps    ports.StampStore
	Logger    ports.Logger
	Tracer    ports.Tracer
}

// Pipeline groups the stages around one set of collaborators.
type Pipeline struct {
	Inspector *Inspector
	Acquirer  *Acquirer
	Init      *Initializer
	DepSync   *DependencySyncer
	Downloads *DownloadsSyncer
	Tarball   *TarballSource
	Prepare   *Preparer
	Build     *Builder
	Clean     *Cleaner
	Status    *Reporter

	// Stamps is the store the stages record prepare and download state in.
	Stamps ports.StampStore
}

// New assembles the stages.
func New(d Deps) *Pipeline {
	inspector := NewInspector(d.VCS)
	acquirer := NewAcquirer(d.VCS, inspector, d.Logger, d.Tracer)
	return &Pipeline{
		Inspector: inspector,
		Acquirer:  acquirer,
		Init:      NewInitializer(acquirer, d.Fetcher, d.Archiver, d.Exec, d.Disk, d.Stamps, d.Logger, d.Tracer),
		DepSync:   NewDependencySyncer(d.GClient, d.Exec, d.Distro, d.Logger, d.Tracer),
		Downloads: NewDownloadsSyncer(acquirer, d.VCS, d.Downloads, d.Stamps, d.Logger, d.Tracer),
		Tarball:   NewTarballSource(d.Fetcher, d.Archiver, d.Stamps, d.Logger, d.Tracer),
		Prepare:   NewPreparer(d.Patch, acquirer, d.VCS, d.Stamps, d.Logger, d.Tracer),
		Build:     NewBuilder(d.Build, d.Disk, d.Smoke, d.Logger, d.Tracer),
		Clean:     NewCleaner(d.Logger, d.Tracer),
		Status:    NewReporter(inspector, d.Stamps, d.Archiver, d.Disk, d.Logger),
		Stamps:    d.Stamps,
	}
}
