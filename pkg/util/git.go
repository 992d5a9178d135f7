package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IsGitRepository checks if the given path contains a Git working copy
func IsGitRepository(projectPath string) bool {
	gitDir := filepath.Join(projectPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		return false
	}
	return info.IsDir()
}

var (
	// SSH format: git@host:org/repo.git
	sshURLRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+:(?:[\w.-]+/)*([\w.-]+?)(\.git)?/?$`)

	// HTTP(S) format: https://host/org/repo.git
	httpURLRegex = regexp.MustCompile(`^https?://[\w.-]+(?::\d+)?/(?:[\w.-]+/)*([\w.-]+?)(\.git)?/?$`)
)

// RepoNameFromURL derives the checkout directory name from a git
// remote URL, the same name `git clone` would pick. Supports SSH
// (git@host:org/repo.git), HTTP(S), and local path forms.
func RepoNameFromURL(remoteURL string) (string, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	if remoteURL == "" {
		return "", fmt.Errorf("empty repository URL")
	}

	if matches := sshURLRegex.FindStringSubmatch(remoteURL); len(matches) >= 2 {
		return matches[1], nil
	}
	if matches := httpURLRegex.FindStringSubmatch(remoteURL); len(matches) >= 2 {
		return matches[1], nil
	}

	// Local path clone
	name := strings.TrimSuffix(filepath.Base(strings.TrimRight(remoteURL, "/")), ".git")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("cannot derive repository name from URL: %s", remoteURL)
	}
	return name, nil
}
