package config

import (
	"fmt"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

type InvalidYAMLError struct {
	Wrapped error
	Path    string
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid configuration document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type InvalidEnvValueError struct {
	Key   string
	Value string
}

func (e *InvalidEnvValueError) Error() string {
	return fmt.Sprintf("environment variable %s has invalid value '%s': expected true or false", e.Key, e.Value)
}
