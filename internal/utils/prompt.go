package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Prompt returns the prompt by checking all the arguments and stdin.
// If there are no arguments, but data in stdin, stdin will become the prompt.
// If there are both, the data in stdin is appended to the arguments.
func Prompt(args []string) (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat stdin: %w", err)
	}
	hasPipe := fi.Mode()&os.ModeNamedPipe != 0

	if len(args) == 0 && !hasPipe {
		return "", errors.New("found no prompt, set args or pipe in some string")
	}
	if !hasPipe {
		return strings.Join(args, " "), nil
	}

	inputData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	pipeIn := strings.TrimSpace(string(inputData))
	if pipeIn != "" {
		args = append(args, pipeIn)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("args: %v\n", args))
	}
	if len(args) == 0 {
		return "", errors.New("found no prompt, stdin was empty")
	}
	return strings.Join(args, " "), nil
}
