package main

import (
	"log"
	"os"
	"strings"

	"textcat/cmd"
	"textcat/pkg/logging"
	"textcat/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "info", "textcat", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	// Execute the root command
	if err := cmd.Execute(logger); err != nil {
		logger.Error("textcat execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logging.Logger)
}

// syncLogger flushes the logger, but only when stderr can accept a
// sync. Syncing a pipe or closed descriptor reports "invalid argument"
// on some platforms, which is not worth surfacing.
func syncLogger(logger *zap.Logger) {
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
