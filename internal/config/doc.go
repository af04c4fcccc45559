// Package config loads the toolkit configuration from environment variables
// (prefix DQ) merged with an optional dqcli.yml file, and owns the
// filesystem layout for data, reports and logs.
package config
