package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/sahayak/internal/models"
	"github.com/baalimago/sahayak/internal/utils"
)

// ChatHandler drives an interactive session: it owns the conversation, reads
// user input and sends it, together with the prior turns, to the model.
type ChatHandler struct {
	q        models.Sender
	conv     *Conversation
	username string
	prompt   string
	raw      bool
	style    string
	debug    bool

	readInput func() (string, error)
	out       io.Writer
	// status receives the waiting animation, kept apart from the replies
	status io.Writer
}

func New(q models.Sender, prompt string, raw bool, style string, out io.Writer) *ChatHandler {
	username := "user"
	currentUser, err := user.Current()
	if err == nil {
		username = currentUser.Username
	}
	if out == nil {
		out = os.Stdout
	}
	return &ChatHandler{
		q:         q,
		conv:      &Conversation{},
		username:  username,
		prompt:    prompt,
		raw:       raw,
		style:     style,
		debug:     misc.Truthy(os.Getenv("DEBUG")),
		readInput: utils.ReadUserInput,
		out:       out,
		status:    os.Stderr,
	}
}

// Conversation of the session so far.
func (cq *ChatHandler) Conversation() *Conversation {
	return cq.conv
}

// Query runs the chat loop until the user exits. The loop always ends with an
// error, utils.ErrUserInitiatedExit on a regular exit.
func (cq *ChatHandler) Query(ctx context.Context) error {
	if strings.TrimSpace(cq.prompt) != "" {
		err := cq.exchange(ctx, strings.TrimSpace(cq.prompt))
		if err != nil {
			return err
		}
	}
	ancli.Noticef("type 'q' or 'quit' to exit\n")
	for {
		if ctx.Err() != nil {
			return utils.ErrUserInitiatedExit
		}
		fmt.Fprintf(cq.out, "%v: ", ancli.ColoredMessage(ancli.CYAN, cq.username))
		userInput, err := cq.readInput()
		if err != nil {
			if errors.Is(err, utils.ErrUserInitiatedExit) {
				return err
			}
			return fmt.Errorf("failed to read user input: %w", err)
		}
		if userInput == "" {
			continue
		}
		err = cq.exchange(ctx, userInput)
		if err != nil {
			return err
		}
	}
}

// exchange sends the user input along with the turns prior to it, then stores
// and prints the reply.
func (cq *ChatHandler) exchange(ctx context.Context, userInput string) error {
	history := cq.conv.Turns()
	cq.conv.Append(models.RoleUser, userInput)
	if cq.debug {
		ancli.PrintOK(fmt.Sprintf("sending query with: %v prior turns\n", len(history)))
	}
	var stopAnimation func()
	if !cq.raw {
		stopAnimation = utils.StartAnimation(cq.status, utils.SearchingText)
	}
	reply := cq.q.Send(ctx, userInput, history)
	if stopAnimation != nil {
		stopAnimation()
	}
	cq.conv.Append(models.RoleAssistant, reply)

	last, err := cq.conv.Last()
	if err != nil {
		return fmt.Errorf("failed to get reply: %w", err)
	}
	err = utils.AttemptPrettyPrint(cq.out, last, cq.username, cq.raw, cq.style)
	if err != nil {
		return fmt.Errorf("failed to print reply: %w", err)
	}
	return nil
}
