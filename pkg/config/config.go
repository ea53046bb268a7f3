/*
Package config manages TOML config for wordrank.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the config directory and default file location.
const AppName = "wordrank"

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig has query related options.
type EngineConfig struct {
	DefaultK   int `toml:"default_k"`
	MaxK       int `toml:"max_k"`
	MaxWordLen int `toml:"max_word_len"`
}

// DictConfig holds the word file locations.
type DictConfig struct {
	Dictionary string `toml:"dictionary"`
	Corpus     string `toml:"corpus"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowImportance bool `toml:"show_importance"`
	ShowStrategy   bool `toml:"show_strategy"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			DefaultK:   5,
			MaxK:       64,
			MaxWordLen: 60,
		},
		CLI: CliConfig{
			ShowImportance: true,
			ShowStrategy:   false,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. platform config dir (~/.config/wordrank, %APPDATA%\wordrank, ...)
// 2. current executable dir
func GetConfigDir() (string, error) {
	resolver, err := utils.NewPathResolver(AppName)
	if err != nil {
		log.Errorf("Failed to resolve paths: %v", err)
		return utils.GetExecutableDir()
	}
	if result := utils.CheckDirStatus(resolver.ConfigDir()); result.Writable {
		return resolver.ConfigDir(), nil
	}
	return resolver.ExecutableDir(), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordrank/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, falling back section by section on parse errors
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps every value it can still read and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(section, &config.Engine)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.normalize()
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractInt64(data, "default_k"); ok {
		engine.DefaultK = val
	}
	if val, ok := utils.ExtractInt64(data, "max_k"); ok {
		engine.MaxK = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		engine.MaxWordLen = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "dictionary"); ok {
		dict.Dictionary = val
	}
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		dict.Corpus = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_importance"); ok {
		cli.ShowImportance = val
	}
	if val, ok := utils.ExtractBool(data, "show_strategy"); ok {
		cli.ShowStrategy = val
	}
}

// normalize replaces values that cannot work with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Engine.MaxK < 1 {
		log.Warnf("Invalid max_k %d, using %d", c.Engine.MaxK, def.Engine.MaxK)
		c.Engine.MaxK = def.Engine.MaxK
	}
	if c.Engine.DefaultK < 0 || c.Engine.DefaultK > c.Engine.MaxK {
		log.Warnf("Invalid default_k %d, using %d", c.Engine.DefaultK, min(def.Engine.DefaultK, c.Engine.MaxK))
		c.Engine.DefaultK = min(def.Engine.DefaultK, c.Engine.MaxK)
	}
	if c.Engine.MaxWordLen < 1 {
		log.Warnf("Invalid max_word_len %d, using %d", c.Engine.MaxWordLen, def.Engine.MaxWordLen)
		c.Engine.MaxWordLen = def.Engine.MaxWordLen
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
