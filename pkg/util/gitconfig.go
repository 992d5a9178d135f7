package util

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// GitConfigAuthor reads user.name and user.email from the user's
// global git configuration. Missing file, unreadable file, or
// missing keys all yield empty strings; scaffolding falls back to
// placeholders.
func GitConfigAuthor() (name, email string) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}

	cfg, err := ini.Load(filepath.Join(homeDir, ".gitconfig"))
	if err != nil {
		return "", ""
	}

	section := cfg.Section("user")
	return section.Key("name").String(), section.Key("email").String()
}

// GitConfigAuthorFrom reads user.name and user.email from a specific
// gitconfig file.
func GitConfigAuthorFrom(path string) (name, email string) {
	cfg, err := ini.Load(path)
	if err != nil {
		return "", ""
	}

	section := cfg.Section("user")
	return section.Key("name").String(), section.Key("email").String()
}
