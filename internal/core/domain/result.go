package domain

// StepStatus is the outcome class of a pipeline step.
type StepStatus string

const (
	// StepSucceeded means the step completed.
	StepSucceeded StepStatus = "succeeded"
	// StepTolerated means the step failed and the failure was deliberately ignored.
	StepTolerated StepStatus = "tolerated"
	// StepSkipped means the step did not apply.
	StepSkipped StepStatus = "skipped"
)

// StepResult records what happened to one pipeline step.
type StepResult struct {
	Step   string     `json:"step"`
	Status StepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
	Err    error      `json:"-"`
}

// Succeeded builds a successful step result.
func Succeeded(step string) StepResult {
	return StepResult{Step: step, Status: StepSucceeded}
}

// Tolerated builds a step result for a failure that does not stop the pipeline.
func Tolerated(step string, err error) StepResult {
	r := StepResult{Step: step, Status: StepTolerated, Err: err}
	if err != nil {
		r.Detail = err.Error()
	}
	return r
}

// Skipped builds a step result for a step that did not apply.
func Skipped(step, reason string) StepResult {
	return StepResult{Step: step, Status: StepSkipped, Detail: reason}
}

// PatchReport lists the outcome of applying a patch series.
type PatchReport struct {
	Dir     string   `json:"dir"`
	Applied []string `json:"applied,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
}

// PatchOptions shapes a patch series application.
type PatchOptions struct {
	// BestEffort applies patches one by one and skips failures.
	BestEffort bool
	// PatchBin is exported as PATCH_BIN when set.
	PatchBin string
}

// SubstitutionRequest describes one domain substitution pass.
type SubstitutionRequest struct {
	RegexList string
	FileList  string
	CacheFile string
}

// PrepareReport is the outcome of the patch and substitution stage.
type PrepareReport struct {
	Steps   []StepResult  `json:"steps"`
	Patches []PatchReport `json:"patches"`
}

// Tolerated returns the steps whose failure was ignored.
func (r PrepareReport) Tolerated() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Status == StepTolerated {
			out = append(out, s)
		}
	}
	return out
}

// BuildReport is the outcome of the build stage.
type BuildReport struct {
	OutputPath string
	Targets    []string
	Flags      FlagSet
	// Bootstrapped is set when gn was built from source for this build.
	Bootstrapped bool
	Smoke        *SmokeReport
}

// StatusReport is the read-only view of a workspace printed by status.
type StatusReport struct {
	Root  string
	Repos []RepoState
	// Prepared is the prepare stamp, nil when the tree is not prepared.
	Prepared *Stamp
	// Downloaded is the direct-download stamp, if any.
	Downloaded *Stamp
	// CacheFiles is the number of files in the domain substitution cache, or -1 without a cache.
	CacheFiles int
	OutputPath string
	ArgsFile   bool
	FreeBytes  uint64
}
