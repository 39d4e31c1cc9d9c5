package internal

import (
	"flag"
	"fmt"

	"github.com/baalimago/sahayak/internal/text"
	"github.com/baalimago/sahayak/internal/utils"
	"github.com/baalimago/sahayak/internal/vendors/gemini"
)

type Configurations struct {
	Model    string
	URL      string
	Style    string
	PrintRaw bool
}

// parseFlags parses CLI flags into an internal Configurations. Short and long
// versions of a flag are mutually exclusive.
func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("sahayak", flag.ContinueOnError)
	fs.String("A-helpful-nonexisting-flag", "there is no default", "This isn't a flag. It's only here to tell you that 'sahayak h/help' gives better overview of usage than 'sahayak -h'.")

	mShort := fs.String("m", defaults.Model, "Set the gemini model to use. Mutually exclusive with model flag.")
	mLong := fs.String("model", defaults.Model, "Set the gemini model to use. Mutually exclusive with m flag.")

	uShort := fs.String("u", defaults.URL, "Set the base url of the generateContent endpoint. Mutually exclusive with url flag.")
	uLong := fs.String("url", defaults.URL, "Set the base url of the generateContent endpoint. Mutually exclusive with u flag.")

	sShort := fs.String("s", defaults.Style, "Set the glamour style used to render replies. Mutually exclusive with style flag.")
	sLong := fs.String("style", defaults.Style, "Set the glamour style used to render replies. Mutually exclusive with s flag.")

	printRawShort := fs.Bool("r", defaults.PrintRaw, "Set to true to print raw output (don't render markdown).")
	printRawLong := fs.Bool("raw", defaults.PrintRaw, "Set to true to print raw output (don't render markdown).")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, []string{}, fmt.Errorf("failed to parse args: %w", err)
	}

	model, err := utils.ReturnNonDefault(*mShort, *mLong, defaults.Model)
	if err != nil {
		return Configurations{}, []string{}, flagError(err, "m", "model")
	}
	url, err := utils.ReturnNonDefault(*uShort, *uLong, defaults.URL)
	if err != nil {
		return Configurations{}, []string{}, flagError(err, "u", "url")
	}
	style, err := utils.ReturnNonDefault(*sShort, *sLong, defaults.Style)
	if err != nil {
		return Configurations{}, []string{}, flagError(err, "s", "style")
	}

	return Configurations{
		Model:    model,
		URL:      url,
		Style:    style,
		PrintRaw: *printRawShort || *printRawLong,
	}, fs.Args(), nil
}

func flagError(err error, shortFlag, longFlag string) error {
	return fmt.Errorf("flags: '%v' and '%v': %w", shortFlag, longFlag, err)
}

// applyFlagOverridesForText only sets the values of tConf which differ from
// the default flags, so that the convention flags > file > default holds.
func applyFlagOverridesForText(tConf *text.Configurations, flagSet, defaultFlags Configurations) {
	if flagSet.PrintRaw != defaultFlags.PrintRaw {
		tConf.Raw = flagSet.PrintRaw
	}
	if flagSet.Style != defaultFlags.Style {
		tConf.Style = flagSet.Style
	}
}

func applyFlagOverridesForGemini(gConf *gemini.Gemini, flagSet, defaultFlags Configurations) {
	if flagSet.Model != defaultFlags.Model {
		gConf.Model = flagSet.Model
	}
	if flagSet.URL != defaultFlags.URL {
		gConf.URL = flagSet.URL
	}
}
