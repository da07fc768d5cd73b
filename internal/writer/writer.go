// =============================================================================
// Triangle Accumulator - Output Emission
// =============================================================================
//
// This module writes the formatted triangle lines to the output text file.
// It is the emission collaborator of the accumulation engine.
//
// OUTPUT CONTRACT:
//   - The path has exactly one extension, and that extension is ".txt"
//   - The destination must not already exist: accumulation runs are
//     append-never, overwrite-never. The check runs before any byte is
//     written, and the file is additionally opened with O_EXCL so a race
//     cannot clobber a file created in between.
//   - Each line is written followed by a single newline character, with no
//     other framing.
//
// =============================================================================

package writer

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ginjaninja78/triangle-accumulator/internal/checks"
	"github.com/ginjaninja78/triangle-accumulator/pkg/fileutil"
)

// Writer writes accumulated output lines to one text file.
type Writer struct {
	// filename is the validated destination path.
	filename string
}

// New validates the destination path and returns a Writer for it.
//
// RETURNS:
//   - A Writer, if the path satisfies the output contract.
//   - A *checks.Error naming the unmet condition otherwise.
func New(filename string) (*Writer, error) {
	suffixes := fileutil.Suffixes(filename)

	if err := checks.Condition(checks.OutputContract, len(suffixes) == 1, "filename has one extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.OutputContract, suffixes[0] == ".txt", "filename has .txt extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.OutputContract, !fileutil.Exists(filename), "%s does not already exist", filename); err != nil {
		return nil, err
	}

	return &Writer{filename: filename}, nil
}

// Write persists the lines, each terminated by a single newline.
func (w *Writer) Write(lines []string) error {
	file, err := os.OpenFile(w.filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := buffered.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// Filename returns the validated destination path.
func (w *Writer) Filename() string {
	return w.filename
}
