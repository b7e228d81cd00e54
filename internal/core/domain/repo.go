package domain

// RepoKind classifies a working directory.
type RepoKind int

const (
	// RepoAbsent means the path does not exist.
	RepoAbsent RepoKind = iota
	// RepoInvalid means the path exists but is not a git working tree of its own.
	RepoInvalid
	// RepoShallowValid means a valid working tree with truncated history.
	RepoShallowValid
	// RepoFullValid means a valid working tree with full history.
	RepoFullValid
)

func (k RepoKind) String() string {
	switch k {
	case RepoAbsent:
		return "absent"
	case RepoInvalid:
		return "invalid"
	case RepoShallowValid:
		return "shallow"
	case RepoFullValid:
		return "full"
	default:
		return "unknown"
	}
}

// RepoState is a snapshot of a working directory. It is recomputed every run.
type RepoState struct {
	Path          string
	Kind          RepoKind
	Revision      string
	Tag           string
	MatchesTarget bool
}

// Exists reports whether the path exists.
func (s RepoState) Exists() bool { return s.Kind != RepoAbsent }

// Valid reports whether the path is a usable working tree.
func (s RepoState) Valid() bool {
	return s.Kind == RepoShallowValid || s.Kind == RepoFullValid
}

// Shallow reports whether the working tree has truncated history.
func (s RepoState) Shallow() bool { return s.Kind == RepoShallowValid }

// WorkTreeProbe is the raw answer of the VCS about a directory.
type WorkTreeProbe struct {
	// IsWorkTree is false when the VCS reports the path is not a repository.
	IsWorkTree bool
	// TopLevel is the root of the enclosing working tree.
	TopLevel string
}

// CloneOptions shapes a clone.
type CloneOptions struct {
	Branch string
	Depth  int
	NoTags bool
}

// AcquireRequest asks for a working directory at a revision.
type AcquireRequest struct {
	Remote string
	Path   string
	// Revision is a tag or branch. Empty tracks the remote default branch.
	Revision string
	Shallow  bool
	Reset    bool
	// Pin requires the tree to end up at Revision. A shallow tree cannot be pinned.
	Pin bool
}

// AcquireAction is what Acquire did to the working directory.
type AcquireAction int

const (
	// ActionNone means no mutating call was made.
	ActionNone AcquireAction = iota
	// ActionCloned means a fresh clone into an absent path.
	ActionCloned
	// ActionRecloned means an invalid path was removed and cloned.
	ActionRecloned
	// ActionUpdated means an existing tree was fetched and checked out.
	ActionUpdated
)

func (a AcquireAction) String() string {
	switch a {
	case ActionCloned:
		return "cloned"
	case ActionRecloned:
		return "recloned"
	case ActionUpdated:
		return "updated"
	default:
		return "up-to-date"
	}
}

// Fresh reports whether the tree content was replaced from the remote.
func (a AcquireAction) Fresh() bool {
	return a == ActionCloned || a == ActionRecloned
}

// AcquireResult is the outcome of acquisition.
type AcquireResult struct {
	Path     string
	Action   AcquireAction
	Revision string
}
