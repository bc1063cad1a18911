package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/cstylecheck/internal/fs"
)

// File is the name of the optional configuration file looked up in the working directory.
const File = ".cstylecheck.yml"

// Environment variables which override the configuration file.
const (
	EnvCheckIncludeGuards = "CSTYLECHECK_CHECK_INCLUDE_GUARDS"
	EnvCheckComments      = "CSTYLECHECK_CHECK_COMMENTS"
)

const DefaultConfigContent = `# cstylecheck configuration

# Verify that header files (.h, .hpp) carry a canonical include guard:
#   #ifndef NAME_H
#   #define NAME_H
#   ...
#   #endif /* NAME_H */
checkIncludeGuards: true

# Only allow /*...*/ comments outside function and struct bodies (unless they span
# several lines) and // comments inside them.
checkComments: true
`

// Config selects which checks run. It is passed explicitly to every check.
type Config struct {
	CheckIncludeGuards bool `yaml:"checkIncludeGuards"`
	CheckComments      bool `yaml:"checkComments"`
}

// fileConfig mirrors Config with pointers so that keys absent from the file keep their defaults.
type fileConfig struct {
	CheckIncludeGuards *bool `yaml:"checkIncludeGuards"`
	CheckComments      *bool `yaml:"checkComments"`
}

// Default returns the configuration with every check enabled.
func Default() *Config {
	return &Config{
		CheckIncludeGuards: true,
		CheckComments:      true,
	}
}

// Load builds the configuration from the defaults, then the configuration file, then
// the environment.
//
// If path is empty, File is looked up in dir and silently skipped when absent.
// An explicit path must exist.
func Load(dir, path string, env fs.EnvProvider) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, File)
	}

	if err := cfg.applyFile(path, explicit); err != nil {
		return nil, err
	}

	if env != nil {
		if err := cfg.applyEnv(env); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) applyFile(path string, explicit bool) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		if os.IsNotExist(err) {
			return &MissingConfigError{Path: path}
		}
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &InvalidYAMLError{Path: path, Wrapped: err}
	}

	if fc.CheckIncludeGuards != nil {
		c.CheckIncludeGuards = *fc.CheckIncludeGuards
	}
	if fc.CheckComments != nil {
		c.CheckComments = *fc.CheckComments
	}
	return nil
}

func (c *Config) applyEnv(env fs.EnvProvider) error {
	if err := envBool(env, EnvCheckIncludeGuards, &c.CheckIncludeGuards); err != nil {
		return err
	}
	return envBool(env, EnvCheckComments, &c.CheckComments)
}

func envBool(env fs.EnvProvider, key string, dst *bool) error {
	v := env.Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return &InvalidEnvValueError{Key: key, Value: v}
	}
	*dst = b
	return nil
}
