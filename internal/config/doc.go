// Package config loads the JSON project configuration that drives a
// generation run and manages user-level settings stored at
// ~/.webgen/config.yaml, such as which generator executables to invoke.
package config
