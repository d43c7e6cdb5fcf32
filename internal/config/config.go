package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/fry-tempura/internal/model"
)

// AppName names the XDG config subdirectory.
const AppName = "fry-tempura"

// DefaultRuntimeSource is the runtime support file deployed when the config
// does not name one. It is the output of the bundle command.
const DefaultRuntimeSource = "dist/fryTempura.js"

// Config is the parsed config file.
type Config struct {
	// Templater holds the template plugin's folders inside the vault.
	Templater TemplaterConfig `json:"templater" toml:"templater"`

	// Runtime describes the runtime support file.
	Runtime RuntimeConfig `json:"runtime" toml:"runtime"`

	// Path is the file the config was loaded from. Not part of the file.
	Path string `json:"-" toml:"-"`
}

// TemplaterConfig holds the template plugin folder locations.
type TemplaterConfig struct {
	// TemplateFolderLocation receives built scripts. Required by build and
	// watch.
	TemplateFolderLocation string `json:"templateFolderLocation" toml:"templateFolderLocation"`

	// ScriptFolderLocation receives the runtime support file. Falls back to
	// TemplateFolderLocation.
	ScriptFolderLocation string `json:"scriptFolderLocation,omitempty" toml:"scriptFolderLocation"`
}

// RuntimeConfig describes the runtime support file.
type RuntimeConfig struct {
	// Source is the runtime file to deploy. Defaults to DefaultRuntimeSource.
	Source string `json:"source,omitempty" toml:"source"`
}

// TemplateDir returns the build destination, or a CLIError with
// ExitConfigInvalid naming the missing key.
func (c *Config) TemplateDir() (string, error) {
	if strings.TrimSpace(c.Templater.TemplateFolderLocation) == "" {
		return "", model.NewCLIError(
			model.ExitConfigInvalid,
			fmt.Sprintf("The `templater.templateFolderLocation` key in %s is required.", c.displayPath()),
		)
	}
	return c.Templater.TemplateFolderLocation, nil
}

// ScriptDir returns the deploy destination: scriptFolderLocation when set,
// otherwise the template folder.
func (c *Config) ScriptDir() (string, error) {
	if dir := strings.TrimSpace(c.Templater.ScriptFolderLocation); dir != "" {
		return dir, nil
	}
	return c.TemplateDir()
}

// RuntimeSource returns the runtime file to deploy.
func (c *Config) RuntimeSource() string {
	if c.Runtime.Source != "" {
		return c.Runtime.Source
	}
	return DefaultRuntimeSource
}

func (c *Config) displayPath() string {
	if c.Path == "" {
		return "the config file"
	}
	return c.Path
}

// Load reads a config file. Files ending in ".toml" are parsed as TOML;
// everything else as JSONC.
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist and
// ExitConfigInvalid if it cannot be parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		// Strip comments and trailing commas before handing the bytes to
		// encoding/json, which silently ignores unknown fields.
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	}
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}

	cfg.Path = path
	return &cfg, nil
}

// Candidates lists the config locations searched by Find, in priority
// order:
//  1. <dir>/config.json
//  2. <dir>/config.toml
//  3. $XDG_CONFIG_HOME/fry-tempura/config.json
//  4. $XDG_CONFIG_HOME/fry-tempura/config.toml
func Candidates(dir string) []string {
	xdgDir := filepath.Join(xdg.ConfigHome, AppName)
	return []string{
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.toml"),
		filepath.Join(xdgDir, "config.json"),
		filepath.Join(xdgDir, "config.toml"),
	}
}

// Find returns the first existing config file among Candidates(dir), or a
// CLIError with ExitConfigNotFound listing every searched path.
func Find(dir string) (string, error) {
	candidates := Candidates(dir)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitConfigNotFound,
		fmt.Sprintf("config file not found (searched %s)", strings.Join(candidates, ", ")),
	)
}

// Resolve loads the config at explicit when it is set, otherwise the first
// file Find locates from dir.
func Resolve(explicit, dir string) (*Config, error) {
	path := explicit
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}
		path = found
	}
	return Load(path)
}
