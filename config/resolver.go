package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileSystem is the part of the OS the loader touches.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	Getwd() (string, error)
}

// OSFileSystem is the FileSystem backed by the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Files are the paths picked for one load. Empty means not found.
type Files struct {
	Config string
	Env    string
}

// Resolver picks the config and env files for a command.
type Resolver struct {
	fs FileSystem
}

// NewResolver returns a Resolver over fs.
func NewResolver(fs FileSystem) *Resolver {
	return &Resolver{fs: fs}
}

// Resolve returns explicit paths unchanged and searches for the rest.
func (r *Resolver) Resolve(name string, o options) Files {
	files := Files{Config: o.configFile, Env: o.envFile}
	if files.Config == "" {
		files.Config = r.first(configCandidates(name))
	}
	if files.Env == "" {
		files.Env = r.first(r.envCandidates(name, files.Config))
	}
	return files
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if r.fs.Exists(p) {
			return p
		}
	}
	return ""
}

func configCandidates(name string) []string {
	return []string{
		"./config.yml",
		"./config.yaml",
		filepath.Join(".", "cmd", name, "config.yml"),
		filepath.Join(".", "config", name+".yml"),
	}
}

// envCandidates looks beside the config file first, then walks up from the
// working directory.
func (r *Resolver) envCandidates(name, configFile string) []string {
	var paths []string
	if configFile != "" {
		paths = append(paths, filepath.Join(filepath.Dir(configFile), ".env"))
	}
	paths = append(paths, filepath.Join(".", "cmd", name, ".env"))

	if wd, err := r.fs.Getwd(); err == nil {
		for dir := wd; ; dir = filepath.Dir(dir) {
			paths = append(paths, filepath.Join(dir, ".env"))
			if filepath.Dir(dir) == dir {
				break
			}
		}
	}
	return dedupe(paths)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		clean := filepath.Clean(item)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, item)
	}
	return out
}
