package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/glissue/internal/domain"
)

// ShowLogsInput contains the parameters for showing the log file.
type ShowLogsInput struct {
	Lines int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log file.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the application log.
type ShowLogs struct {
	configDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(configDir string) *ShowLogs {
	return &ShowLogs{
		configDir: configDir,
	}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if uc.configDir == "" {
		return nil, domain.ErrLogNotFound
	}
	logPath := domain.LogPath(uc.configDir)

	content, err := os.ReadFile(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLogNotFound, logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := string(content)
	if in.Lines > 0 {
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n") + "\n"
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
