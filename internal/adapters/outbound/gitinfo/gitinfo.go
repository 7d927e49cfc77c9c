package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git. Roles usually live
// inside a larger repository, so the lookup walks up from the role dir.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(rolePath string) bool {
	_, err := g.open(rolePath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(rolePath string) (string, error) {
	repo, err := g.open(rolePath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func (g *GitInfoAdapter) open(rolePath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(rolePath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}
