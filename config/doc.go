// Package config loads captionkit configuration.
//
// Configuration lives in a TOML file at
// $XDG_CONFIG_HOME/captionkit/config.toml (or ~/.config/captionkit), with
// environment variable fallbacks for values the file does not set.
// Precedence: config file, then environment, then built-in defaults.
package config
