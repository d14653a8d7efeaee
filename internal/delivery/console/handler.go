package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

// Handler reads one command per line, feeds it to the engine and prints the
// resulting message. It owns the session for the lifetime of Run.
type Handler struct {
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	engine  QuizEngine
	session *entities.Session
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	engine QuizEngine,
	session *entities.Session,
) *Handler {
	return &Handler{
		in:      in,
		out:     out,
		logger:  logger,
		engine:  engine,
		session: session,
	}
}

// Run serves commands until the user quits, the input ends or ctx is done.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("console handler started", zap.String("session_id", h.session.ID.String()))
	defer h.logger.Info("console handler stopped", zap.String("session_id", h.session.ID.String()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go h.readLines(ctx, lines, readErr)

	for h.session.Continue {
		if _, err := io.WriteString(h.out, h.prompt()); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			h.handleLine(line)
			if _, err := fmt.Fprintf(h.out, "%s\n\n", h.session.TakeMessage()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *Handler) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			readErr <- ctx.Err()
			return
		}
	}
	readErr <- scanner.Err()
}

func (h *Handler) prompt() string {
	if h.session.AwaitingAnswer() {
		return promptAnswer
	}
	return promptCommand
}
