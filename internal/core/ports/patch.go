package ports

import (
	"context"

	"go.trai.ch/ucb/internal/core/domain"
)

// PatchTool applies patches, pruning and domain substitution to a source tree.
// Paths are relative to the working directory root unless absolute.
//
//go:generate mockgen -source=patch.go -destination=mocks/mock_patch.go -package=mocks
type PatchTool interface {
	// ApplyFixup applies a single patch file with patch(1) in root.
	ApplyFixup(ctx context.Context, root, patchFile string) error

	// Prune removes the binaries named in list from src.
	Prune(ctx context.Context, root, utilsDir, src, list string) error

	// ApplySeries applies the patch series in patchDir to src.
	ApplySeries(ctx context.Context, root, utilsDir, src, patchDir string, opts domain.PatchOptions) (domain.PatchReport, error)

	// SubstituteDomains runs one domain substitution pass over src.
	SubstituteDomains(ctx context.Context, root, utilsDir, src string, req domain.SubstitutionRequest) error
}

// DownloadsTool retrieves and unpacks the source archives listed in downloads.ini files.
type DownloadsTool interface {
	Retrieve(ctx context.Context, root, utilsDir string, inis []string, cache string) error
	Unpack(ctx context.Context, root, utilsDir string, inis []string, cache, dest string) error
}
