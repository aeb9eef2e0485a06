package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "midl.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindMidlTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok, err := findMidlToml(nested)
	if err != nil {
		t.Fatalf("findMidlToml: %v", err)
	}
	if !ok || found != path {
		t.Errorf("expected %s, got %q (ok=%v)", path, found, ok)
	}
}

func TestFindMidlTomlMissing(t *testing.T) {
	_, ok, err := findMidlToml(t.TempDir())
	if err != nil {
		t.Fatalf("findMidlToml: %v", err)
	}
	if ok {
		t.Error("expected no manifest in an empty directory")
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no_package", "", "missing [package]"},
		{"no_name", "[package]\n", "missing [package].name"},
		{"blank_name", "[package]\nname = \" \"\n", "missing [package].name"},
		{"bad_toml", "[package\n", "failed to parse TOML"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), c.content)
			_, err := loadProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestManifestCheckTargets(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\nfiles = [\"api.idl\", \"types/base.idl\"]\n")

	manifest, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest: ok=%v err=%v", ok, err)
	}
	targets := manifest.checkTargets()
	want := []string{
		filepath.Join(root, "api.idl"),
		filepath.Join(root, "types", "base.idl"),
	}
	if len(targets) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(targets))
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("target %d: got %q, want %q", i, targets[i], want[i])
		}
	}
}

func TestManifestDefaultsToProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")

	manifest, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest: ok=%v err=%v", ok, err)
	}
	targets := manifest.checkTargets()
	if len(targets) != 1 || targets[0] != root {
		t.Errorf("expected the project root, got %v", targets)
	}
}
