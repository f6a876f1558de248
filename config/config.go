// Package config loads and saves the file manager's user configuration: the
// session sort order, the trash location and logging settings.
//
// The file is YAML. A missing file yields Default(). Environment variables
// override file values after loading:
//
//	FILEMGR_TRASH_DIR   trash.dir
//	FILEMGR_LOG_LEVEL   log.level
//	FILEMGR_LOG_FORMAT  log.format
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
	"github.com/jmgilman/go/filemgr/sorting"
)

// Environment variables that override file values.
const (
	EnvTrashDir  = "FILEMGR_TRASH_DIR"
	EnvLogLevel  = "FILEMGR_LOG_LEVEL"
	EnvLogFormat = "FILEMGR_LOG_FORMAT"
)

const appName = "filemgr"

// Config is the persisted user configuration.
type Config struct {
	Sort  Sort  `yaml:"sort"`
	Trash Trash `yaml:"trash"`
	Log   Log   `yaml:"log"`
}

// Sort holds the session sort settings.
type Sort struct {
	// Key is a sort key name or number, as accepted by sorting.ParseKey.
	Key           string `yaml:"key"`
	Reverse       bool   `yaml:"reverse"`
	DirsFirst     bool   `yaml:"dirs_first"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Unicode       bool   `yaml:"unicode"`
	LightMode     bool   `yaml:"light_mode"`
}

// Trash locates the trash can.
type Trash struct {
	// Dir is the trash root. A leading "~/" expands to the home directory.
	Dir string `yaml:"dir"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	sc := sorting.DefaultConfig()
	return Config{
		Sort: Sort{
			Key:           sc.Key.String(),
			Reverse:       sc.Reverse,
			DirsFirst:     sc.DirsFirst,
			CaseSensitive: sc.CaseSensitive,
			Unicode:       sc.UnicodeAware,
			LightMode:     sc.LightMode,
		},
		Trash: Trash{Dir: DefaultTrashDir()},
		Log: Log{
			Level:  logging.LevelWarn.String(),
			Format: string(logging.FormatText),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/filemgr/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "failed to locate the configuration directory")
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// DefaultTrashDir returns $XDG_DATA_HOME/Trash, or ~/.local/share/Trash.
func DefaultTrashDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
		return filepath.Join(dir, "Trash")
	}
	return filepath.Join("~", ".local", "share", "Trash")
}

// Load reads path from fsys. A missing file returns Default with
// environment overrides applied. The result is validated.
func Load(fsys core.FS, path string) (Config, error) {
	cfg, err := read(fsys, path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// SaveSort replaces the sort section of the file at path and leaves every
// other value as the file has it, so environment overrides are never
// written back.
func SaveSort(fsys core.FS, path string, sc sorting.Config) error {
	cfg, err := read(fsys, path)
	if err != nil {
		return err
	}
	cfg.SetSort(sc)
	return cfg.Save(fsys, path)
}

func read(fsys core.FS, path string) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file"), "path", path)
		}
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvTrashDir); ok && v != "" {
		c.Trash.Dir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := sorting.ParseKey(c.Sort.Key); err != nil {
		return invalid("sort.key", "%q is not a sort key", c.Sort.Key)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", "%q is not a log level", c.Log.Level)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", "%q is not a log format", c.Log.Format)
	}
	if strings.TrimSpace(c.Trash.Dir) == "" {
		return invalid("trash.dir", "must not be empty")
	}
	return nil
}

func invalid(field, format string, args ...interface{}) error {
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidConfig, field+": "+format, args...),
		"field", field)
}

// Save writes the configuration to path, creating parent directories. The
// file is written to a temporary sibling and renamed into place so readers
// never see a partial file.
func (c Config) Save(fsys core.FS, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode config")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeForOS(err), "failed to create config directory"), "path", path)
	}

	tmp := path + ".tmp"
	if err := writeSynced(fsys, tmp, data); err != nil {
		_ = fsys.Remove(tmp)
		return errors.WithContext(
			errors.Wrap(err, errors.CodeForOS(err), "failed to write config file"), "path", tmp)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.WithContext(
			errors.Wrap(err, errors.CodeForOS(err), "failed to replace config file"), "path", path)
	}
	return nil
}

func writeSynced(fsys core.FS, name string, data []byte) error {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if s, ok := f.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}

// SortConfig converts the sort section for the sorting package.
func (c Config) SortConfig() (sorting.Config, error) {
	key, err := sorting.ParseKey(c.Sort.Key)
	if err != nil {
		return sorting.Config{}, invalid("sort.key", "%q is not a sort key", c.Sort.Key)
	}
	return sorting.Config{
		Key:           key,
		Reverse:       c.Sort.Reverse,
		DirsFirst:     c.Sort.DirsFirst,
		CaseSensitive: c.Sort.CaseSensitive,
		UnicodeAware:  c.Sort.Unicode,
		LightMode:     c.Sort.LightMode,
	}, nil
}

// SetSort stores sc in the sort section. Keys are saved by name.
func (c *Config) SetSort(sc sorting.Config) {
	c.Sort = Sort{
		Key:           sc.Key.String(),
		Reverse:       sc.Reverse,
		DirsFirst:     sc.DirsFirst,
		CaseSensitive: sc.CaseSensitive,
		Unicode:       sc.UnicodeAware,
		LightMode:     sc.LightMode,
	}
}

// LoggingConfig converts the log section. Output is left to the caller.
func (c Config) LoggingConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, invalid("log.level", "%v", err)
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return logging.Config{}, invalid("log.format", "%v", err)
	}
	return logging.Config{Level: level, Format: format}, nil
}

// TrashDir returns the trash root with a leading "~/" expanded.
func (c Config) TrashDir() (string, error) {
	dir := c.Trash.Dir
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeTrashUnavailable, "failed to expand trash.dir")
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}
