package actionsutils

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

const (
	// OutputEnvName names the file GitHub Actions reads step outputs from.
	OutputEnvName = "GITHUB_OUTPUT"
	// SummaryEnvName names the file GitHub Actions renders as the step summary.
	SummaryEnvName = "GITHUB_STEP_SUMMARY"
)

var (
	MissingEnvError = func(name string) error {
		return eris.Errorf("%s environment variable is not set", name)
	}
)

// Sinks holds the two append-only files a workflow step communicates through:
// the machine-readable output file and the human-readable step summary.
// Both files are owned by the runner; Sinks only ever appends to them.
type Sinks struct {
	fs          afero.Fs
	outputPath  string
	summaryPath string
}

func NewSinks(fs afero.Fs, outputPath, summaryPath string) *Sinks {
	return &Sinks{
		fs:          fs,
		outputPath:  outputPath,
		summaryPath: summaryPath,
	}
}

// NewSinksFromEnv resolves both sink paths from the environment.
// Errors if either variable is absent or empty.
func NewSinksFromEnv(fs afero.Fs) (*Sinks, error) {
	outputPath := os.Getenv(OutputEnvName)
	if outputPath == "" {
		return nil, MissingEnvError(OutputEnvName)
	}
	summaryPath := os.Getenv(SummaryEnvName)
	if summaryPath == "" {
		return nil, MissingEnvError(SummaryEnvName)
	}
	return NewSinks(fs, outputPath, summaryPath), nil
}

// WriteOutput appends a single name=value record to the output file.
func (s *Sinks) WriteOutput(name, value string) error {
	return s.appendLine(s.outputPath, fmt.Sprintf("%s=%s", name, value))
}

// WriteSummary appends a single line of summary markdown.
func (s *Sinks) WriteSummary(content string) error {
	return s.appendLine(s.summaryPath, content)
}

// Each append is a complete open/write/close so no handle outlives the call.
func (s *Sinks) appendLine(path, line string) error {
	file, err := s.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return eris.Wrapf(err, "opening %s for append", path)
	}
	defer file.Close()
	if _, err := file.WriteString(line + "\n"); err != nil {
		return eris.Wrapf(err, "appending to %s", path)
	}
	return nil
}
