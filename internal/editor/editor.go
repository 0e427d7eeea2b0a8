package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the editor command line split into program and arguments.
// SHOTDOC_EDITOR wins over EDITOR and VISUAL; vi is the fallback.
func Command() []string {
	for _, key := range []string{"SHOTDOC_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Open edits path in the user's editor, attached to the current terminal.
func Open(path string) error {
	argv := Command()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", strings.Join(argv, " "), err)
	}
	return nil
}
