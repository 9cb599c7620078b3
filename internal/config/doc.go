// Package config provides user configuration for pokedex.
//
// Settings come from four layers, each overriding the one before:
//
//  1. Built-in defaults (Default)
//  2. The YAML configuration file
//  3. A .env file in the working directory and POKEDEX_* environment variables
//  4. Command-line flags, applied by the caller
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/pokedex/config.yaml or $HOME/.config/pokedex/config.yaml
//   - macOS: $HOME/.config/pokedex/config.yaml
//   - Windows: %LOCALAPPDATA%\pokedex\config.yaml
//
// # Usage Example
//
//	_ = config.LoadDotEnv()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Save is protected by a mutex and writes atomically through a temporary file.
package config
