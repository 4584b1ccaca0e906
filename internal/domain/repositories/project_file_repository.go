package repositories

import (
	"context"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

// LocateOptions controls how the project tree is walked.
type LocateOptions struct {
	// Exclude holds doublestar patterns matched against slash-separated paths
	// relative to the root. Matching directories are pruned.
	Exclude []string
	// SkipUnreadable records traversal errors on sub-paths instead of aborting.
	SkipUnreadable bool
}

// ProjectFileRepository discovers build files and version catalogs below a root.
type ProjectFileRepository interface {
	// Locate walks root and returns the matching paths without opening any file.
	Locate(ctx context.Context, root string, opts LocateOptions) (*entities.ProjectFiles, error)
}
