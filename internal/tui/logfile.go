package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITPROMPT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitprompt/logs/gitprompt.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITPROMPT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "gitprompt.log"
	}

	return filepath.Join(homeDir, ".gitprompt", "logs", "gitprompt.log")
}
