// Package config loads command configuration from YAML files, .env files and
// the process environment using viper and godotenv.
//
// Files are searched relative to the working directory:
//
//	./config.yml
//	./cmd/<name>/config.yml
//	./config/<name>.yml
//
// A .env file found next to them is loaded into the environment first.
// Environment variables then override file values; with WithEnvPrefix only
// variables carrying the prefix are considered and the prefix is stripped, so
// SEQSTAT_RANGE_TO sets range.to.
package config
