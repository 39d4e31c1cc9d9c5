package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/baalimago/sahayak/internal/models"
)

// NoAnswerText replaces the answer when the response carries no text.
const NoAnswerText = "Sorry, I couldn't find an answer to that."

func parseResponse(body []byte) (models.Answer, error) {
	var gemResp GeminiResponse
	if err := json.Unmarshal(body, &gemResp); err != nil {
		return models.Answer{}, fmt.Errorf("%w: failed to decode JSON: %w", models.ErrMalformedResponse, err)
	}
	if len(gemResp.Candidates) == 0 {
		return models.Answer{Text: NoAnswerText}, nil
	}
	candidate := gemResp.Candidates[0]
	return models.Answer{
		Text:    candidate.FirstText(),
		Sources: candidate.Sources(),
	}, nil
}

// FirstText returns the text of the first content part, or NoAnswerText if
// there is none.
func (c Candidate) FirstText() string {
	if c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0].Text == nil {
		return NoAnswerText
	}
	return *c.Content.Parts[0].Text
}

// Sources collects the web attributions which have both uri and title, in
// response order. Duplicates are kept.
func (c Candidate) Sources() []models.Source {
	if c.GroundingMetadata == nil {
		return nil
	}
	var ret []models.Source
	for _, attribution := range c.GroundingMetadata.GroundingAttributions {
		web := attribution.Web
		if web == nil || web.URI == nil || web.Title == nil {
			continue
		}
		ret = append(ret, models.Source{URI: *web.URI, Title: *web.Title})
	}
	return ret
}
