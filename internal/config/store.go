package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalFileName is the per-repo configuration file, placed at the
// repository root.
const LocalFileName = ".gwm.toml"

// DefaultGlobalPath returns the user-wide configuration file path.
func DefaultGlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gwm", "config.toml"), nil
}

// LocalPathIn returns the local configuration file path for a repository
// root.
func LocalPathIn(repoRoot string) string {
	return filepath.Join(repoRoot, LocalFileName)
}

// Store owns the two configuration files and the merged result.
// The merge is computed on first Load and cached for the process
// lifetime; saves invalidate the cache.
type Store struct {
	GlobalPath string
	LocalPath  string

	cached *Config
}

// NewStore creates a Store over the given file paths.
func NewStore(globalPath, localPath string) *Store {
	return &Store{GlobalPath: globalPath, LocalPath: localPath}
}

// fileConfig mirrors Config with presence-aware fields, so the merge can
// distinguish "not set" from a zero value.
type fileConfig struct {
	Prefix       *string `toml:"prefix"`
	ManualPrefix *string `toml:"manual_prefix"`
	WorktreeDir  *string `toml:"worktree_dir"`
	PostCommands []Group `toml:"post_commands"`
}

// Load returns the merged configuration. Missing files contribute only
// defaults; a present file that fails to parse or validate is an *Error.
func (s *Store) Load() (Config, error) {
	if s.cached != nil {
		return *s.cached, nil
	}

	global, err := loadFile(s.GlobalPath)
	if err != nil {
		return Config{}, err
	}
	local, err := loadFile(s.LocalPath)
	if err != nil {
		return Config{}, err
	}

	merged := merge(global, local)
	if err := Validate(merged); err != nil {
		return Config{}, err
	}
	s.cached = &merged
	return merged, nil
}

// GlobalConfig returns defaults layered with the global file only.
func (s *Store) GlobalConfig() (Config, error) {
	return s.tierConfig(s.GlobalPath)
}

// LocalConfig returns defaults layered with the local file only.
func (s *Store) LocalConfig() (Config, error) {
	return s.tierConfig(s.LocalPath)
}

func (s *Store) tierConfig(path string) (Config, error) {
	fc, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	return merge(fc, nil), nil
}

// HasGlobal reports whether the global file exists. No parsing is done.
func (s *Store) HasGlobal() bool {
	return fileExists(s.GlobalPath)
}

// HasLocal reports whether the local file exists. No parsing is done.
func (s *Store) HasLocal() bool {
	return fileExists(s.LocalPath)
}

// SaveGlobal validates cfg (defaults filled by the caller through
// GlobalConfig) and writes it as the global file, creating parent
// directories as needed.
func (s *Store) SaveGlobal(cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.GlobalPath), 0o755); err != nil {
		return &Error{Msg: "create config directory", Err: err}
	}
	return s.write(s.GlobalPath, cfg)
}

// SaveLocal validates cfg and writes it as the local file.
func (s *Store) SaveLocal(cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	return s.write(s.LocalPath, cfg)
}

// InitLocal constructs a default configuration, applies overrides and
// persists it as the local file. Fails if the file already exists.
func (s *Store) InitLocal(apply func(*Config)) (Config, error) {
	if s.HasLocal() {
		return Config{}, &Error{Msg: "local config already exists: " + s.LocalPath}
	}
	cfg := Default()
	if apply != nil {
		apply(&cfg)
	}
	if err := s.SaveLocal(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s *Store) write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return &Error{Msg: "encode config", Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &Error{Msg: "write " + path, Err: err}
	}
	s.cached = nil
	return nil
}

// loadFile parses one configuration file. A missing file yields nil
// (contributing only defaults). Unknown keys and wrong field types are
// schema violations.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Msg: "read " + path, Err: err}
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return nil, &Error{Msg: "parse " + path, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &Error{Msg: fmt.Sprintf("unrecognized key %q in %s", undecoded[0].String(), path)}
	}
	return &fc, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
