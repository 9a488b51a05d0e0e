/*
Package config manages TOML config for phrasegap.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/phrasegap/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	API     APIConfig     `toml:"api"`
	Filter  FilterConfig  `toml:"filter"`
	Lexicon LexiconConfig `toml:"lexicon"`
	Log     LogConfig     `toml:"log"`
	CLI     CliConfig     `toml:"cli"`
}

// APIConfig has PhraseFinder endpoint options.
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	Corpus    string `toml:"corpus"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// FilterConfig holds the cleaning thresholds.
// WordCheck can be turned off to inspect raw API candidates.
type FilterConfig struct {
	MinScore  float64 `toml:"min_score"`
	WordCheck bool    `toml:"word_check"`
}

// LexiconConfig points at the word list file.
type LexiconConfig struct {
	WordsFile string `toml:"words_file"`
}

// LogConfig holds the log sink options.
type LogConfig struct {
	File string `toml:"file"`
}

// CliConfig holds interactive mode defaults.
type CliConfig struct {
	DefaultNumWords int `toml:"default_num_words"`
	DefaultLimit    int `toml:"default_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/phrasegap
// 2. ~/Library/Application Support/phrasegap (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "phrasegap")
	if utils.DirWritable(primaryPath) {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "phrasegap")
	if utils.DirWritable(macOSPath) {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
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
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/phrasegap/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://api.phrasefinder.io/search",
			Corpus:    "eng-gb",
			TimeoutMS: 0,
		},
		Filter: FilterConfig{
			MinScore:  0.001,
			WordCheck: true,
		},
		Lexicon: LexiconConfig{
			WordsFile: "",
		},
		Log: LogConfig{
			File: "debug.log",
		},
		CLI: CliConfig{
			DefaultNumWords: 1,
			DefaultLimit:    0,
		},
	}
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if apiSection, ok := utils.ExtractSection(tempConfig, "api"); ok {
		extractAPIConfig(apiSection, &config.API)
	}
	if filterSection, ok := utils.ExtractSection(tempConfig, "filter"); ok {
		extractFilterConfig(filterSection, &config.Filter)
	}
	if lexSection, ok := utils.ExtractSection(tempConfig, "lexicon"); ok {
		extractLexiconConfig(lexSection, &config.Lexicon)
	}
	if logSection, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(logSection, &config.Log)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractAPIConfig extracts API configuration from a map
func extractAPIConfig(data map[string]any, api *APIConfig) {
	if val, ok := utils.ExtractString(data, "base_url"); ok {
		api.BaseURL = val
	}
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		api.Corpus = val
	}
	if val, ok := utils.ExtractInt64(data, "timeout_ms"); ok {
		api.TimeoutMS = val
	}
}

// extractFilterConfig extracts filter thresholds from a map
func extractFilterConfig(data map[string]any, filter *FilterConfig) {
	if val, ok := utils.ExtractFloat64(data, "min_score"); ok {
		filter.MinScore = val
	}
	if val, ok := utils.ExtractBool(data, "word_check"); ok {
		filter.WordCheck = val
	}
}

// extractLexiconConfig extracts lexicon options from a map
func extractLexiconConfig(data map[string]any, lex *LexiconConfig) {
	if val, ok := utils.ExtractString(data, "words_file"); ok {
		lex.WordsFile = val
	}
}

// extractLogConfig extracts log sink options from a map
func extractLogConfig(data map[string]any, lc *LogConfig) {
	if val, ok := utils.ExtractString(data, "file"); ok {
		lc.File = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_num_words"); ok {
		cli.DefaultNumWords = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
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
