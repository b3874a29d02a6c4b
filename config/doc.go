// Package config loads the optimizer CLI's settings from built-in
// defaults, a YAML file and environment variables, in that increasing
// order of precedence, using viper. Command-line flags are applied on
// top by the optimize command, not by this package.
package config
