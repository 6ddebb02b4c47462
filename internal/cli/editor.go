package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jacksmith/larder/internal/model"
)

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use `larder qty` instead")
	}

	// Create temp file with suffix for syntax highlighting
	tmpFile, err := os.CreateTemp("", "larder-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	// Write content to temp file
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	// Run editor
	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	// Read modified content
	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
func runEditor(editor, path string) error {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}

// QuantitySheet renders cart items as one "id quantity # name" line each,
// for editing in $EDITOR.
func QuantitySheet(items []model.LineItem) []byte {
	var b bytes.Buffer
	b.WriteString("# Edit quantities. Set 0 or delete a line to remove the item.\n")
	b.WriteString("# Quantities above stock are lowered to the stock level.\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s %d  # %s (stock %d)\n", it.ID, it.Quantity, it.Name, it.Stock)
	}
	return b.Bytes()
}

// ParseQuantitySheet reads an edited quantity sheet. Comments and blank lines
// are ignored. Ids may not repeat.
func ParseQuantitySheet(data []byte) (map[string]int, error) {
	out := make(map[string]int)
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ValidationError{Field: fmt.Sprintf("line %d", lineNo), Message: "expected <id> <quantity>"}
		}
		qty, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("line %d", lineNo), Message: fmt.Sprintf("quantity %q is not a whole number", fields[1])}
		}
		id := model.NormalizeProductID(fields[0])
		if _, dup := out[id]; dup {
			return nil, &ValidationError{Field: fmt.Sprintf("line %d", lineNo), Message: fmt.Sprintf("item %s listed twice", id)}
		}
		out[id] = qty
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edited quantities: %w", err)
	}
	return out, nil
}
