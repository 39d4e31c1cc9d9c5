package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/baalimago/sahayak/internal"
	"github.com/baalimago/sahayak/internal/utils"
)

const usage = `sahayak - ask about Indian government schemes, answers grounded with Google Search

Prerequisites:
  - Set the GEMINI_API_KEY environment variable to your Gemini API key
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output
  - (Optional) Set the SAHAYAK_CONFIG_HOME environment variable to change the config directory

Usage: sahayak [flags] <command>

Flags:
  -r, -raw bool          Set to true to print raw markdown output. (default is found in textConfig.json)
  -m, -model string      Set the gemini model to use. (default is found in gemini.json)
  -u, -url string        Set the base url of the generateContent endpoint. (default is found in gemini.json)
  -s, -style string      Set the glamour style used to render replies, ex: auto, dark, light, notty. (default is found in textConfig.json)

Commands:
  h|help                 Display this help message
  q|query <text>         Ask a single question. Stdin is appended to the question when piped.
  c|chat <text>          Start a conversation, optionally with a first question. Type 'q' or 'quit' to exit.
  v|version              Print the version

The configuration files are found in: %v

Examples:
  - sahayak query "Which schemes support women entrepreneurs?"
  - sahayak -r q "What is PM-KISAN?" > answer.md
  - sahayak chat "Am I eligible for Ayushman Bharat?"
`

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	querier, err := internal.Setup(usage, args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { shutdown.Monitor(cancel) }()
	err = querier.Query(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			ancli.Okf("Seems like you wanted out. Byebye!\n")
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
	return 0
}
