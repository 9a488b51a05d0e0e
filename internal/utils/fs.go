package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// DirWritable reports whether dirPath can hold the config file, creating
// the directory first when missing. Permission bits alone don't settle the
// question on every filesystem, so we write and remove a scratch file.
func DirWritable(dirPath string) bool {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return false
	}
	scratch := filepath.Join(dirPath, ".pg_write_check")
	f, err := os.Create(scratch)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(scratch)
	return true
}

// SaveTOMLFile encodes data as TOML into filePath, replacing any previous
// content.
func SaveTOMLFile(data interface{}, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create %s: %w", filePath, err)
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// GetAbsolutePath resolves configPath against the working directory.
// An empty path reads as "unknown" for display purposes.
func GetAbsolutePath(configPath string) string {
	if configPath == "" {
		return "unknown"
	}
	if !filepath.IsAbs(configPath) {
		if absPath, err := filepath.Abs(configPath); err == nil {
			return absPath
		}
	}
	return configPath
}

// GetExecutableDir returns the directory of the current executable
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
