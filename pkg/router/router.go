// Package router maps a classification tag to the destination folder
// a repository is filed under and performs the final move. The
// workspace root is always passed in explicitly; nothing here reads
// ambient process environment state.
package router

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"mkdev/pkg/classify"
	"mkdev/pkg/config"
)

// dirNames is the fixed tag-to-folder mapping. Folder names are part
// of the observable contract; users navigate them by hand.
var dirNames = map[classify.Tag]string{
	classify.Python:     "Python_projects",
	classify.Go:         "Go_projects",
	classify.JavaScript: "JavaScript_projects",
	classify.Rust:       "Rust_projects",
	classify.Java:       "Java_projects",
	classify.C:          "C_projects",
	classify.Ruby:       "Ruby_projects",
	classify.PHP:        "PHP_projects",
	classify.Swift:      "Swift_projects",
	classify.Other:      "Other_projects",
}

// Dir returns the destination folder name for a tag.
func Dir(tag classify.Tag) string {
	if name, ok := dirNames[tag]; ok {
		return name
	}
	return dirNames[classify.Other]
}

// Destination returns the path a project with the given tag should
// live at beneath the workspace root.
func Destination(workspace string, tag classify.Tag, name string) string {
	return filepath.Join(workspace, Dir(tag), name)
}

// Move relocates src to dest, creating the language folder on the
// way. An existing destination is an error unless force, in which
// case it is replaced. Falls back to copy+delete when rename crosses
// filesystems.
func Move(src, dest string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(dest), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create destination folder: %w", err)
	}

	if _, err := os.Stat(dest); err == nil {
		if !force {
			return fmt.Errorf("destination already exists: %s (use --force to replace)", dest)
		}
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("failed to remove existing destination: %w", err)
		}
	}

	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	if err := copyTree(src, dest); err != nil {
		return fmt.Errorf("failed to copy into destination: %w", err)
	}
	return os.RemoveAll(src)
}

// copyTree duplicates a directory tree, preserving file modes.
func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, config.PermDirectory)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		in, err := os.Open(p)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return err
		}
		defer out.Close()

		_, err = io.Copy(out, in)
		return err
	})
}
