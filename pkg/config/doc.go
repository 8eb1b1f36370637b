// Package config loads typed configuration structs from environment
// variables (with optional .env file support) using caarlos0/env tags.
// Each struct type is parsed once per process and cached, so packages can
// independently load their own config without coordinating.
package config
