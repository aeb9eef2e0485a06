package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noMidlTomlMessage = "no midl.toml found\nplease name the files explicitly, e.g.:\n  midl check path/to/file.idl"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
}

type packageConfig struct {
	Name  string   `toml:"name"`
	Files []string `toml:"files"`
}

// findMidlToml walks from startDir toward the filesystem root looking for a
// midl.toml manifest.
func findMidlToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "midl.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findMidlToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// checkTargets resolves the manifest into concrete check arguments. An
// explicit [package].files list is taken relative to the manifest root; an
// absent list means the whole project tree.
func (m *projectManifest) checkTargets() []string {
	if len(m.Config.Package.Files) == 0 {
		return []string{m.Root}
	}
	targets := make([]string, len(m.Config.Package.Files))
	for i, f := range m.Config.Package.Files {
		if filepath.IsAbs(f) {
			targets[i] = f
		} else {
			targets[i] = filepath.Join(m.Root, f)
		}
	}
	return targets
}
