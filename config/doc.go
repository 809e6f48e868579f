// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a yaml file layered over built-in
// defaults and validated using struct tags. CLI flags may override
// individual fields after loading.
package config
