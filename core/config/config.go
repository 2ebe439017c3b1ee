package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const (
	DefaultHistoryFile = "/tmp/factorial_history"

	configDirName  = ".factorial"
	configFileName = "config.json"
)

type Config struct {
	HistoryFile  string `json:"history_file"`
	Color        bool   `json:"color"`
	WarnOverflow bool   `json:"warn_overflow"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		HistoryFile:  DefaultHistoryFile,
		Color:        true,
		WarnOverflow: true,
	}
}

// configFilePath builds the path to ~/.factorial/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to detect home directory")
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads configuration from ~/.factorial/config.json.
// A missing file is not an error: defaults are returned instead.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Default(), err
	}

	return LoadFile(path)
}

// LoadFile reads configuration from path, falling back to defaults when
// the file does not exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Default(), errors.Wrapf(err, "decode config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Save writes the provided configuration to ~/.factorial/config.json.
func Save(cfg Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	return SaveFile(path, cfg)
}

// SaveFile writes cfg as indented JSON to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create config %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(cfg), "encode config")
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Initial configuration (factorial)")

	cfg := Default()

	color, err := selectYesNo("Use colored output")
	if err != nil {
		return cfg, err
	}
	cfg.Color = color

	warn, err := selectYesNo("Warn when a result wraps around 32 bits")
	if err != nil {
		return cfg, err
	}
	cfg.WarnOverflow = warn

	historyPrompt := promptui.Prompt{
		Label:   fmt.Sprintf("History file (default %s)", DefaultHistoryFile),
		Default: DefaultHistoryFile,
	}
	hf, err := historyPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.HistoryFile = strings.TrimSpace(hf)

	// ensure default path is set if user left the input blank
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if err := Save(cfg); err != nil {
		return cfg, err
	}

	fmt.Println("Configuration saved to ~/.factorial/config.json ✅")

	return cfg, nil
}

func selectYesNo(label string) (bool, error) {
	sel := promptui.Select{
		Label: label,
		Items: []string{"yes", "no"},
	}
	_, choice, err := sel.Run()
	if err != nil {
		return false, err
	}
	return choice == "yes", nil
}

// Validate checks the configuration and applies necessary fixes
func (c *Config) Validate() error {
	c.HistoryFile = strings.TrimSpace(c.HistoryFile)
	if c.HistoryFile == "" {
		c.HistoryFile = DefaultHistoryFile
	}

	if strings.HasSuffix(c.HistoryFile, string(filepath.Separator)) {
		return errors.Errorf("history file %q must not be a directory", c.HistoryFile)
	}

	return nil
}
