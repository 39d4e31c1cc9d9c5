package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/sahayak/internal/models"
)

// Generate asks the model for an answer to query, given the history. Transient
// failures are retried with exponential backoff, up to MaxAttempts attempts.
func (g *Gemini) Generate(ctx context.Context, query string, history []models.Turn) (models.Answer, error) {
	reqData := g.newRequest(query, history)
	if g.debug {
		ancli.PrintOK(fmt.Sprintf("gemini request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	body, err := json.Marshal(reqData)
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to encode JSON: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < g.MaxAttempts; attempt++ {
		answer, err := g.do(ctx, body)
		if err == nil {
			return answer, nil
		}
		var transient *TransientError
		if !errors.As(err, &transient) {
			return models.Answer{}, err
		}
		lastErr = err
		ancli.PrintWarn(fmt.Sprintf("gemini: attempt %v/%v failed: %v\n", attempt+1, g.MaxAttempts, err))
		if attempt == g.MaxAttempts-1 {
			break
		}
		if waitErr := g.backoff.Wait(ctx, attempt); waitErr != nil {
			lastErr = fmt.Errorf("%w, stopped retrying: %w", lastErr, waitErr)
			break
		}
	}
	if lastErr == nil {
		return models.Answer{}, models.ErrNoAttempts
	}
	return models.Answer{}, fmt.Errorf("%w: %w", models.ErrRetriesExhausted, lastErr)
}

func (g *Gemini) newRequest(query string, history []models.Turn) GeminiRequest {
	contents := make([]Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, textContent(turn.Role, turn.Text))
	}
	contents = append(contents, textContent(models.RoleUser, query))

	req := GeminiRequest{
		Contents: contents,
		Tools:    []Tool{{GoogleSearch: &GoogleSearch{}}},
	}
	if g.SystemInstruction != "" {
		instruction := g.SystemInstruction
		req.SystemInstruction = &SystemInstruction{
			Parts: []Part{{Text: &instruction}},
		}
	}
	return req
}

func textContent(role, text string) Content {
	return Content{
		Role:  role,
		Parts: []Part{{Text: &text}},
	}
}

func (g *Gemini) createRequest(ctx context.Context, body []byte) (*http.Request, error) {
	u, err := url.Parse(g.endpoint())
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}
	q := u.Query()
	q.Set("key", g.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", withoutURL(err))
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do a single attempt. Errors worth retrying are returned as *TransientError.
func (g *Gemini) do(ctx context.Context, body []byte) (models.Answer, error) {
	req, err := g.createRequest(ctx, body)
	if err != nil {
		return models.Answer{}, err
	}
	client := g.client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return models.Answer{}, &TransientError{Err: withoutURL(err)}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return models.Answer{}, &TransientError{
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("failed to read body: %w", err),
		}
	}
	if res.StatusCode != http.StatusOK {
		return models.Answer{}, &TransientError{
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(resBody)),
		}
	}
	if g.debug {
		ancli.PrintOK(fmt.Sprintf("gemini response: %v\n", string(resBody)))
	}
	return parseResponse(resBody)
}

var _ models.Generator = (*Gemini)(nil)
