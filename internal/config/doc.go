// Package config holds process-wide defaults for sdom.
//
// Documents capture their bootstrap configuration at creation time; any field
// the caller leaves unset falls back to the values here. Defaults come from
// constants, optionally overridden by an sdom.json file.
package config
