// Package config provides the configuration for seokit.
// It defines the defaults shared by every subcommand, the optional
// .seokit.yaml file, and the environment overrides loaded from .env.
package config
