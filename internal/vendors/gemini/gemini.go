package gemini

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

var Default = Gemini{
	Model:       "gemini-2.5-flash-preview-09-2025",
	URL:         BaseURL,
	Timeout:     "60s",
	MaxAttempts: 5,
	BaseDelay:   "1s",
}

// Gemini is the configuration of the generateContent client. It's stored as
// gemini.json in the config dir. The api key is only ever read from the
// environment.
type Gemini struct {
	Model       string `json:"model"`
	URL         string `json:"url"`
	Timeout     string `json:"timeout"`
	MaxAttempts int    `json:"max_attempts"`
	BaseDelay   string `json:"base_delay"`
	// SystemInstruction is set from the text configuration
	SystemInstruction string `json:"-"`

	apiKey  string
	client  *http.Client
	backoff Backoff
	debug   bool
}

// Seems like gemini lacks a lot of configuration. Even the model selection is via url, not body
const BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

const (
	apiKeyEnv = "GEMINI_API_KEY"
	debugEnv  = "GEMINI_DEBUG"
)

func (g *Gemini) Setup() error {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("environment variable '%v' not set", apiKeyEnv)
	}
	timeout, err := time.ParseDuration(g.Timeout)
	if err != nil {
		return fmt.Errorf("failed to parse timeout '%v': %w", g.Timeout, err)
	}
	baseDelay, err := time.ParseDuration(g.BaseDelay)
	if err != nil {
		return fmt.Errorf("failed to parse base_delay '%v': %w", g.BaseDelay, err)
	}
	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv(debugEnv)) {
		g.debug = true
	}
	g.apiKey = apiKey
	g.client = &http.Client{Timeout: timeout}
	g.backoff = NewBackoff(baseDelay, g.debug)
	return nil
}

// endpoint of the generateContent call, without the api key.
func (g *Gemini) endpoint() string {
	return fmt.Sprintf("%v/%v:generateContent", strings.TrimRight(g.URL, "/"), g.Model)
}
