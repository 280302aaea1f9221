// Package config loads and merges commitguard configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (COMMITGUARD_LOG_LEVEL, COMMITGUARD_FORMAT,
//     COMMITGUARD_NO_COLOR, NO_COLOR)
//  3. Project rules file (.commitguard.yaml at the repository root)
//  4. User config file ($XDG_CONFIG_HOME/commitguard/config.json)
//  5. Built-in defaults
//
// Rule lists are additive: every layer appends to the built-in tables and
// none can remove a default entry. Use [Load] to obtain a merged [Config],
// [Save] to write the user file, and [SetField] to update one key.
package config
