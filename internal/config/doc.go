// Package config loads heartform settings with viper: built-in defaults, an
// optional YAML file, then HEARTFORM_* environment overrides.
package config
