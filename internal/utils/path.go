package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// PathResolver finds config and word files relative to the places a user
// is likely to keep them.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and the per-user config dir for appName
func NewPathResolver(appName string) (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(execDir); err == nil {
		execDir = resolved
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir, appName),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir, appName string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", appName)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		return filepath.Join(homeDir, ".config", appName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		return filepath.Join(homeDir, "."+appName)
	}
}

// ConfigDir returns the per-user config directory
func (pr *PathResolver) ConfigDir() string { return pr.configDir }

// ExecutableDir returns the directory containing the executable
func (pr *PathResolver) ExecutableDir() string { return pr.executableDir }

// ResolveFile finds a dictionary or corpus file. It tries in order:
// 1. the path as given (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. inside <config dir>/data
func (pr *PathResolver) ResolveFile(userPath string) (string, error) {
	if userPath == "" {
		return "", fmt.Errorf("no file given")
	}

	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userPath),
			filepath.Join(pr.configDir, "data", filepath.Base(userPath)),
		)
	}

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", userPath, path)
			return GetAbsolutePath(path), nil
		}
		log.Debugf("File candidate not found: %s", path)
	}
	return "", fmt.Errorf("file %s not found (tried %s): %w", userPath, strings.Join(candidates, ", "), os.ErrNotExist)
}
