// Package git provides git context detection using go-git.
package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
)

// Detector reads git context for the status line.
type Detector struct{}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{}
}

// CurrentBranch returns the branch name of the repository containing
// workingDir (empty means the current directory). A detached HEAD reports
// the abbreviated commit hash.
func (d *Detector) CurrentBranch(workingDir string) (string, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(workingDir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("git repository not found: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return head.Hash().String()[:7], nil
	}
	return head.Name().Short(), nil
}
