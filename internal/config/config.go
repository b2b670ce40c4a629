package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultCardCount is the fixture size used when neither the command line
// nor the config file supplies one.
const DefaultCardCount = 150

// Config represents the application configuration
type Config struct {
	DefaultCount   int    `toml:"default_count"`
	OutputDir      string `toml:"output_dir"`
	DefaultCatalog string `toml:"default_catalog"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCatalogLibraryPath returns the path to the catalog library
func GetCatalogLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "mpcgen", "catalogs")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "mpcgen", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	// Create default config. An empty default_catalog means the builtin one.
	config := &Config{
		DefaultCount: DefaultCardCount,
	}

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// GetCatalogPath returns the path to a catalog, either in the catalog library
// or a literal path to a catalog file
func GetCatalogPath(catalogName string) (string, error) {
	// First, try to find the catalog in the catalog library
	libraryPath := GetCatalogLibraryPath()
	catalogPath := filepath.Join(libraryPath, catalogName+".toml")

	if _, err := os.Stat(catalogPath); err == nil {
		return catalogPath, nil
	}

	// If not found in the library, treat as a path
	if _, err := os.Stat(catalogName); err == nil {
		return catalogName, nil
	}

	return "", fmt.Errorf("catalog not found: %s", catalogName)
}

// GetDefaultCatalog returns the default catalog name from config. An empty
// name means the builtin catalog.
func GetDefaultCatalog() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultCatalog, nil
}

// SetDefaultCatalog sets the default catalog in the config
func SetDefaultCatalog(catalogName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	// Update the default catalog
	config.DefaultCatalog = catalogName

	// Open the config file for writing
	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %v", err)
	}
	defer file.Close()

	// Encode the updated config
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetDefaultCount returns the configured fixture size, falling back to
// DefaultCardCount when the config carries none.
func GetDefaultCount() (int, error) {
	config, err := LoadConfig()
	if err != nil {
		return 0, err
	}

	if config.DefaultCount <= 0 {
		return DefaultCardCount, nil
	}

	return config.DefaultCount, nil
}

// GetOutputDir returns the configured output directory. An empty string
// means the current working directory.
func GetOutputDir() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.OutputDir, nil
}
