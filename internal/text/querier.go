package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/sahayak/internal/models"
	"github.com/baalimago/sahayak/internal/utils"
)

type Querier[C models.Generator] struct {
	Raw      bool
	Style    string
	Model    C
	prompt   string
	username string
	debug    bool
	out      io.Writer
	status   io.Writer
}

func NewQuerier[C models.Generator](userConf Configurations, model C) (*Querier[C], error) {
	err := model.Setup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup model: %w", err)
	}
	querier := &Querier[C]{
		Raw:    userConf.Raw,
		Style:  userConf.Style,
		Model:  model,
		prompt: userConf.Prompt,
		out:    os.Stdout,
		status: os.Stderr,
	}
	currentUser, err := user.Current()
	if err == nil {
		querier.username = currentUser.Username
	} else {
		querier.username = "user"
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		querier.debug = true
	}
	return querier, nil
}

// Send the query along with the history to the model. Never fails, any error
// is returned as a reply suitable for display.
func (q *Querier[C]) Send(ctx context.Context, query string, history []models.Turn) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			reply = fmt.Sprintf(unexpectedErrFormat, r)
		}
	}()
	answer, err := q.Model.Generate(ctx, query, history)
	if err != nil {
		if q.debug {
			ancli.PrintErr(fmt.Sprintf("generate failed: %v\n", err))
		}
		return ErrorText(err)
	}
	return FormatAnswer(answer)
}

// Query sends the configured prompt without any history and prints the reply.
// Blocking operation.
func (q *Querier[C]) Query(ctx context.Context) error {
	var stopAnimation func()
	if !q.Raw {
		stopAnimation = utils.StartAnimation(q.status, utils.SearchingText)
	}
	reply := q.Send(ctx, q.prompt, nil)
	if stopAnimation != nil {
		stopAnimation()
	}
	err := utils.AttemptPrettyPrint(q.out, models.Turn{
		Role: models.RoleAssistant,
		Text: reply,
	}, q.username, q.Raw, q.Style)
	if err != nil {
		return fmt.Errorf("failed to print reply: %w", err)
	}
	return nil
}

var _ models.Sender = (*Querier[models.Generator])(nil)
