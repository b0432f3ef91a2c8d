// Package config provides configuration structures and utilities for skyedex.
// It defines the PokeAPI endpoint, HTTP transport settings, response cache
// settings and output format preferences, and loads them from an optional
// YAML configuration file.
package config
