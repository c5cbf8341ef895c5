// Package config loads runtime settings from the environment.
//
// Settings are declared as struct fields with `env` tags and parsed with
// caarlos0/env; a .env file in the working directory is loaded once as a
// fallback, which keeps local development and tests free of shell exports.
// The dispatch core itself never reads configuration - only the wiring layer
// (cmd/synapse) does, to pick tier thresholds and script settings.
package config
