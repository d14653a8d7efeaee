package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

// Engine runs the price quiz over a Session. Malformed user input never
// surfaces as an error: it becomes the session message and the session goes on.
//
// An Engine keeps no per-session state, but its rng is not safe for
// concurrent use; give each goroutine its own Engine.
type Engine struct {
	rng       *rand.Rand
	logger    *zap.Logger
	presenter *Presenter

	minQuantity int
	maxQuantity int
}

// Option configures an Engine.
type Option func(*Engine)

// WithQuantityRange sets the inclusive range random list quantities are drawn from.
func WithQuantityRange(minQuantity, maxQuantity int) Option {
	return func(e *Engine) {
		e.minQuantity = minQuantity
		e.maxQuantity = maxQuantity
	}
}

// NewEngine creates an Engine drawing all randomness from rng.
func NewEngine(rng *rand.Rand, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		rng:         rng,
		logger:      logger,
		presenter:   NewPresenter(),
		minQuantity: entities.DefaultMinQuantity,
		maxQuantity: entities.DefaultMaxQuantity,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ProcessAnswer checks raw against the pending answer. The question is
// consumed whatever the outcome, including a non-numeric answer.
func (e *Engine) ProcessAnswer(s *entities.Session, raw string) {
	amount, ok := ParseAmount(raw)
	if !ok {
		s.ClearPendingAnswer()
		s.Message = msgInvalidAnswer
		e.logger.Debug("answer is not a number",
			zap.String("session_id", s.ID.String()),
			zap.String("answer", raw),
		)
		return
	}

	e.ProcessAnswerAmount(s, amount)
}

// ProcessAnswerAmount checks an already numeric answer against the pending answer.
func (e *Engine) ProcessAnswerAmount(s *entities.Session, amount float64) {
	expected, pending := s.PendingAnswer()
	s.ClearPendingAnswer()

	cents, ok := entities.ToCents(amount)
	correct := pending && ok && cents == expected
	if correct {
		s.Message = msgCorrect
	} else {
		s.Message = msgIncorrect
	}

	e.logger.Info("answer checked",
		zap.String("session_id", s.ID.String()),
		zap.Bool("correct", correct),
		zap.Bool("pending", pending),
	)
}

// Ask masks one row of the list and opens a question about it.
// The row index is drawn from [0, Len()] inclusive; the last slot is the
// total, so the total is picked once more often than any single entry.
func (e *Engine) Ask(s *entities.Session) {
	if s.List.Len() == 0 {
		s.Message = msgEmptyList
		return
	}

	e.askAt(s, e.rng.Intn(s.List.Len()+1))
}

func (e *Engine) askAt(s *entities.Session, question int) {
	text, err := e.presenter.RenderList(s.List, question)
	if err != nil {
		s.Message = msgEmptyList
		return
	}

	var answer int64
	if question < s.List.Len() {
		answer, err = s.List.ItemCents(question)
		if err != nil {
			e.logger.Error("failed to read item price", zap.Int("question", question), zap.Error(err))
			s.Message = msgEmptyList
			return
		}
	} else {
		answer = s.List.TotalCents()
	}

	s.SetPendingAnswer(answer)
	s.Message = text

	e.logger.Debug("question asked",
		zap.String("session_id", s.ID.String()),
		zap.Int("question", question),
		zap.Int("list_len", s.List.Len()),
	)
}

// AddItem parses input as "<name>: <price>" and adds the item to the pool.
func (e *Engine) AddItem(s *entities.Session, input string) {
	parts := strings.Split(input, ": ")
	if len(parts) != 2 {
		s.Message = fmt.Sprintf(msgAddUsage, input)
		return
	}
	name, priceText := parts[0], parts[1]

	price, ok := ParseAmount(priceText)
	if !ok {
		if v, negative := parseNegated(priceText); negative {
			s.Message = fmt.Sprintf(msgInvalidPrice, "-"+formatFloat(v))
			return
		}
		s.Message = fmt.Sprintf(msgNotANumber, priceText)
		return
	}

	if name == "" {
		s.Message = msgEmptyName
		return
	}

	item, err := entities.NewItem(name, price)
	if errors.Is(err, entities.ErrPriceTooLarge) {
		s.Message = fmt.Sprintf(msgPriceTooLarge, priceText, formatFloat(entities.MaxPrice))
		return
	}
	if err != nil {
		s.Message = fmt.Sprintf(msgInvalidPrice, priceText)
		return
	}

	if err = s.Pool.Add(item); err != nil {
		if errors.Is(err, entities.ErrDuplicateItem) {
			s.Message = msgDuplicate
			return
		}
		e.logger.Error("failed to add item", zap.String("item", name), zap.Error(err))
		s.Message = err.Error()
		return
	}

	s.Message = fmt.Sprintf(msgAdded, item)
	e.logger.Info("item added",
		zap.String("session_id", s.ID.String()),
		zap.String("item", name),
		zap.Int64("cents", item.Cents()),
	)
}

// parseNegated reports whether text is a numeric literal wrapped in minus signs.
func parseNegated(text string) (float64, bool) {
	if !strings.Contains(text, "-") {
		return 0, false
	}
	return ParseAmount(strings.Trim(text, "-"))
}

// DelItem removes the item called name from the pool.
func (e *Engine) DelItem(s *entities.Session, name string) {
	if err := s.Pool.Remove(name); err != nil {
		s.Message = fmt.Sprintf(msgNotPresent, name)
		return
	}

	s.Message = fmt.Sprintf(msgRemoved, name)
	e.logger.Info("item removed",
		zap.String("session_id", s.ID.String()),
		zap.String("item", name),
	)
}

// RefreshList replaces the shopping list with a new random sample of the pool.
func (e *Engine) RefreshList(s *entities.Session) {
	if s.Pool.Size() == 0 {
		s.Message = msgEmptyPool
		return
	}

	err := s.List.Refresh(e.rng, s.Pool, entities.WithQuantityRange(e.minQuantity, e.maxQuantity))
	if errors.Is(err, entities.ErrAmountOverflow) {
		s.Message = msgTotalTooLarge
		return
	}
	if err != nil {
		e.logger.Error("failed to refresh shopping list", zap.Error(err))
		s.Message = err.Error()
		return
	}

	s.Message = fmt.Sprintf(msgListCreated, s.List.Len())
	e.logger.Debug("shopping list refreshed",
		zap.String("session_id", s.ID.String()),
		zap.Int("list_len", s.List.Len()),
	)
}

// Show renders the list or the catalog depending on what.
func (e *Engine) Show(s *entities.Session, what string) {
	switch what {
	case "list":
		e.ShowList(s)
	case "items":
		e.ShowItems(s)
	default:
		s.Message = fmt.Sprintf(msgShowUsage, what)
	}
}

// ShowList renders the current list with its total.
func (e *Engine) ShowList(s *entities.Session) {
	text, err := e.presenter.RenderList(s.List, NoMask)
	if err != nil {
		s.Message = msgEmptyList
		return
	}
	s.Message = text
}

// ShowItems renders the catalog sorted by name.
func (e *Engine) ShowItems(s *entities.Session) {
	s.Message = e.presenter.RenderItems(s.Pool)
}

// Quit ends the session.
func (e *Engine) Quit(s *entities.Session) {
	s.Stop()
	s.Message = msgGoodbye
	e.logger.Info("session finished",
		zap.String("session_id", s.ID.String()),
		zap.Duration("duration", time.Since(s.StartedAt)),
	)
}
