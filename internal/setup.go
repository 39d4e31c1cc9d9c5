package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/sahayak/internal/chat"
	"github.com/baalimago/sahayak/internal/models"
	"github.com/baalimago/sahayak/internal/text"
	"github.com/baalimago/sahayak/internal/utils"
	"github.com/baalimago/sahayak/internal/vendors/gemini"
)

type Mode int

const (
	HELP Mode = iota
	QUERY
	CHAT
	VERSION
)

const (
	textConfigFile   = "textConfig.json"
	geminiConfigFile = "gemini.json"
)

var defaultFlags = Configurations{}

func getModeFromArgs(cmd string) (Mode, error) {
	switch cmd {
	case "chat", "c":
		return CHAT, nil
	case "query", "q":
		return QUERY, nil
	case "help", "h":
		return HELP, nil
	case "version", "v":
		return VERSION, nil
	default:
		return HELP, fmt.Errorf("unknown command: '%s'", cmd)
	}
}

func setupTextQuerier(mode Mode, confDir string, flagSet Configurations, args []string) (models.Querier, error) {
	tConf, err := utils.LoadConfigFromFile(confDir, textConfigFile, &text.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to load text config: %w", err)
	}
	applyFlagOverridesForText(&tConf, flagSet, defaultFlags)

	gConf, err := utils.LoadConfigFromFile(confDir, geminiConfigFile, &gemini.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to load gemini config: %w", err)
	}
	applyFlagOverridesForGemini(&gConf, flagSet, defaultFlags)
	gConf.SystemInstruction = tConf.SystemPrompt

	if mode == QUERY {
		tConf.Prompt, err = utils.Prompt(args)
		if err != nil {
			return nil, fmt.Errorf("failed to setup prompt: %w", err)
		}
	} else {
		tConf.Prompt = strings.Join(args, " ")
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("text config: %+v, gemini config: %+v\n", tConf, gConf))
	}

	tq, err := text.NewQuerier(tConf, &gConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create text querier: %w", err)
	}
	if mode == CHAT {
		return chat.New(tq, tConf.Prompt, tConf.Raw, tConf.Style, os.Stdout), nil
	}
	return tq, nil
}

// Setup parses the args and returns the querier of the selected command. Help
// and version print and return utils.ErrUserInitiatedExit.
func Setup(usage string, args []string) (models.Querier, error) {
	flagSet, args, err := parseFlags(defaultFlags, args)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("found no command, see 'sahayak help' for usage")
	}
	mode, err := getModeFromArgs(args[0])
	if err != nil {
		return nil, err
	}

	switch mode {
	case CHAT, QUERY:
		confDir, err := utils.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to find config dir: %w", err)
		}
		return setupTextQuerier(mode, confDir, flagSet, args[1:])
	case HELP:
		confDir, _ := utils.GetConfigDir()
		fmt.Printf(usage, confDir)
		return nil, utils.ErrUserInitiatedExit
	case VERSION:
		return printVersion()
	default:
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
}
