package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type exportedPattern struct {
	Length         int    `json:"length" yaml:"length"`
	WinLength      int    `json:"win_length" yaml:"win_length"`
	WinningPattern string `json:"winning_pattern" yaml:"winning_pattern"`
}

type exportDocument struct {
	AllPatterns []exportedPattern `json:"all_patterns" yaml:"all_patterns"`
}

// Export writes a pattern table as a document listing every mask with the
// board size and winning length it belongs to.
func Export(out io.Writer, format string, size, winningLen int, patterns []pattern.Pattern) error {
	document := exportDocument{AllPatterns: make([]exportedPattern, 0, len(patterns))}
	for _, p := range patterns {
		document.AllPatterns = append(document.AllPatterns, exportedPattern{
			Length:         size,
			WinLength:      winningLen,
			WinningPattern: p.String(),
		})
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	return nil
}

// ExportFile writes the table to path, replacing any existing file.
func ExportFile(path, format string, size, winningLen int, patterns []pattern.Pattern) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err = Export(file, format, size, winningLen, patterns); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
