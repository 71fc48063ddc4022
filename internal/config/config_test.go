package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAppDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatalf("InitAppDir returned error: %v", err)
	}
	for _, rel := range []string{"state", "logs"} {
		info, err := os.Stat(filepath.Join(projectDir, AppDir, rel))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", rel, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(projectDir, AppDir, "config.yaml"))
	if err != nil {
		t.Fatalf("default config.yaml missing: %v", err)
	}
	if !strings.Contains(string(data), "reviewer: admin") {
		t.Fatalf("default config.yaml missing reviewer entry:\n%s", data)
	}
}

func TestInitAppDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatal(err)
	}
	custom := "version: 1\ncredentials:\n  casey: secret\nreviewer: casey\n"
	path := filepath.Join(projectDir, AppDir, "config.yaml")
	if err := os.WriteFile(path, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitAppDir(projectDir); err != nil {
		t.Fatalf("second InitAppDir returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Fatalf("InitAppDir overwrote existing config.yaml")
	}
}

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Settings.Version != 1 {
		t.Fatalf("expected default version 1, got %d", c.Settings.Version)
	}
	if c.Reviewer() != defaultReviewer {
		t.Fatalf("expected default reviewer %q, got %q", defaultReviewer, c.Reviewer())
	}
	if _, ok := c.Credentials()["user"]; !ok {
		t.Fatalf("expected default checker credentials, got %v", c.Credentials())
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
credentials:
  riley: hunter2
  morgan: letmein
reviewer: morgan
`)
	path := filepath.Join(projectDir, AppDir, "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if len(c.Credentials()) != 2 {
		t.Fatalf("expected 2 credential entries, got %d", len(c.Credentials()))
	}
	if c.Reviewer() != "morgan" {
		t.Fatalf("wrong reviewer: %s", c.Reviewer())
	}
	if c.StateDir() != filepath.Join(projectDir, AppDir, "state") {
		t.Fatalf("unexpected state dir: %s", c.StateDir())
	}
}

func TestNewConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty credentials",
			yaml: "version: 1\ncredentials: {}\nreviewer: admin\n",
			want: "credentials table is empty",
		},
		{
			name: "reviewer not in table",
			yaml: "version: 1\ncredentials:\n  user: user\nreviewer: ghost\n",
			want: "not in the credentials table",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			projectDir := t.TempDir()
			if err := InitAppDir(projectDir); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(projectDir, AppDir, "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewConfig(projectDir)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
