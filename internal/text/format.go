package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baalimago/sahayak/internal/models"
)

const (
	connectionTroubleFormat = "Sorry, I am having trouble connecting. Please try again later. Error: %v"
	unexpectedErrFormat     = "An unexpected error occurred: %v"
	noResponseText          = "Sorry, I was unable to get a response after several attempts."
)

// FormatAnswer renders the answer text followed by a numbered markdown list of
// its sources, if there are any.
func FormatAnswer(answer models.Answer) string {
	if len(answer.Sources) == 0 {
		return answer.Text
	}
	var sb strings.Builder
	sb.WriteString(answer.Text)
	sb.WriteString("\n\n**Sources:**\n")
	for i, source := range answer.Sources {
		fmt.Fprintf(&sb, "  %d. [%s](%s)\n", i+1, source.Title, source.URI)
	}
	return sb.String()
}

// ErrorText turns a failed generation into a reply which may be shown to the user.
func ErrorText(err error) string {
	switch {
	case errors.Is(err, models.ErrNoAttempts):
		return noResponseText
	case errors.Is(err, models.ErrRetriesExhausted):
		return fmt.Sprintf(connectionTroubleFormat, err)
	default:
		return fmt.Sprintf(unexpectedErrFormat, err)
	}
}
