package console

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// handleLine routes a line to the pending question or to a command.
func (h *Handler) handleLine(cmd string) {
	s := h.session

	h.logger.Debug("line received",
		zap.String("session_id", s.ID.String()),
		zap.String("text", cmd),
		zap.Bool("answer", s.AwaitingAnswer()),
	)

	if s.AwaitingAnswer() {
		h.engine.ProcessAnswer(s, cmd)
		return
	}

	switch cmd {
	case "q", "quit":
		h.engine.Quit(s)
		return
	case "a", "ask":
		h.engine.Ask(s)
		return
	case "l", "list":
		h.engine.RefreshList(s)
		return
	}

	if what, ok := commandArgs(cmd, "show"); ok {
		h.engine.Show(s, what)
		return
	}
	if input, ok := commandArgs(cmd, "add"); ok {
		h.engine.AddItem(s, input)
		return
	}
	if name, ok := commandArgs(cmd, "del"); ok {
		h.engine.DelItem(s, name)
		return
	}

	s.Message = fmt.Sprintf(msgInvalidCommand, cmd)
}

// commandArgs returns the text after "<name> " when cmd is that command.
// The bare command name yields empty arguments.
func commandArgs(cmd, name string) (string, bool) {
	if cmd == name {
		return "", true
	}
	if rest, ok := strings.CutPrefix(cmd, name+" "); ok {
		return rest, true
	}
	return "", false
}
