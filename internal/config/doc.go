// Package config manages user-level settings stored at ~/.lunapress/config.yaml.
// It resolves the vendor directory that holds the package manager's install
// manifest and the default log level.
package config
