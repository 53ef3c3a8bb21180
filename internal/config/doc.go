// Package config defines application configuration and its loading.
package config
