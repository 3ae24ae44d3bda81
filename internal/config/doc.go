// Package config loads and validates datefix configuration.
//
// Configuration lives in a TOML file (default ~/.config/datefix/config.toml,
// with a project-local datefix.toml fallback) decoded over built-in defaults.
// Load returns a normalized, validated Config with every path expanded to an
// absolute form; CLI flags layer on top of the result. The package also owns
// the embedded sample configuration used by `datefix config init`.
package config
