package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	return NewEngine(rand.New(rand.NewSource(seed)), zaptest.NewLogger(t))
}

func macbookSession(t *testing.T) *entities.Session {
	t.Helper()
	pool := newPool(t, mustItem(t, "Macbook", 1999.99))
	list := newList(t, pool, entities.WithSize(1), entities.WithQuantities(1))
	return entities.NewSession(pool, list)
}

func TestEngine_ProcessAnswer(t *testing.T) {
	tests := []struct {
		name    string
		pending bool
		answer  string
		want    string
	}{
		{name: "correct", pending: true, answer: "1999.99", want: "Correct!"},
		{name: "correct with fewer decimals", pending: true, answer: "1999.990", want: "Correct!"},
		{name: "wrong amount", pending: true, answer: "100.00", want: ""},
		{name: "not a number", pending: true, answer: "hi", want: "The provided answer is not a valid number!"},
		{name: "negative", pending: true, answer: "-1999.99", want: "The provided answer is not a valid number!"},
		{name: "nothing pending", pending: false, answer: "1999.99", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 1)
			s := macbookSession(t)
			if tt.pending {
				s.SetPendingAnswer(199999)
			}

			e.ProcessAnswer(s, tt.answer)

			assert.Equal(t, tt.want, s.Message)
			assert.False(t, s.AwaitingAnswer(), "any answer consumes the question")
		})
	}
}

func TestEngine_ProcessAnswerAmount(t *testing.T) {
	e := newTestEngine(t, 1)
	s := macbookSession(t)

	s.SetPendingAnswer(199999)
	e.ProcessAnswerAmount(s, 1999.99)
	assert.Equal(t, "Correct!", s.Message)

	s.SetPendingAnswer(199999)
	e.ProcessAnswerAmount(s, 100.00)
	assert.Equal(t, "", s.Message)
	assert.False(t, s.AwaitingAnswer())

	s.SetPendingAnswer(199999)
	e.ProcessAnswerAmount(s, 1e300)
	assert.Equal(t, "", s.Message)
	assert.False(t, s.AwaitingAnswer())
}

func TestEngine_AskSingleItem(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newTestEngine(t, seed)
		s := macbookSession(t)

		e.Ask(s)

		answer, ok := s.PendingAnswer()
		require.True(t, ok)
		assert.Equal(t, int64(199999), answer, "item and total share the same price")
		assert.Contains(t, s.Message, "$????.??")

		e.ProcessAnswer(s, "1999.99")
		assert.Equal(t, "Correct!", s.Message)
		assert.False(t, s.AwaitingAnswer())
	}
}

func TestEngine_AskAt(t *testing.T) {
	e := newTestEngine(t, 1)
	pool := seedPool(t)
	list := newList(t, pool, entities.WithSize(3), entities.WithQuantities(3, 2, 4))
	s := entities.NewSession(pool, list)

	for q := 0; q < list.Len(); q++ {
		e.askAt(s, q)
		want, err := list.ItemCents(q)
		require.NoError(t, err)
		got, ok := s.PendingAnswer()
		require.True(t, ok)
		assert.Equal(t, want, got, "question %d", q)
	}

	e.askAt(s, list.Len())
	got, ok := s.PendingAnswer()
	require.True(t, ok)
	assert.Equal(t, list.TotalCents(), got)
	assert.Contains(t, s.Message, "TOTAL")
}

func TestEngine_AskDrawsTotalInclusively(t *testing.T) {
	e := newTestEngine(t, 11)
	pool := newPool(t, mustItem(t, "a", 1), mustItem(t, "b", 2))
	list := newList(t, pool, entities.WithSize(2), entities.WithQuantities(1, 1))
	s := entities.NewSession(pool, list)

	seen := make(map[int64]int)
	for i := 0; i < 300; i++ {
		e.Ask(s)
		answer, ok := s.PendingAnswer()
		require.True(t, ok)
		seen[answer]++
		s.ClearPendingAnswer()
	}

	assert.Len(t, seen, 3, "both items and the total are asked")
	assert.Contains(t, seen, int64(300))
}

func TestEngine_AskEmptyList(t *testing.T) {
	e := newTestEngine(t, 1)
	s := entities.NewSession(seedPool(t), nil)

	e.Ask(s)

	assert.Equal(t, msgEmptyList, s.Message)
	assert.False(t, s.AwaitingAnswer())
}

func TestEngine_AddItem(t *testing.T) {
	e := newTestEngine(t, 1)
	s := macbookSession(t)

	steps := []struct {
		input string
		want  string
	}{
		{input: "banana: 0.99", want: "Item(banana, 0.99) added successfully."},
		{input: "banana: 0.99", want: "Duplicate!"},
		{input: ": 0.99", want: "Item name string cannot be empty."},
		{input: "banana: -0.99", want: `The price argument ("-0.99") does not appear to be any of the following: float, an integer, or a string that can be parsed to a non-negative float`},
		{input: "apple: -5", want: `The price argument ("-5.0") does not appear to be any of the following: float, an integer, or a string that can be parsed to a non-negative float`},
		{input: "banana: hi", want: "could not convert string to float: 'hi'"},
		{input: "banana: -hi", want: "could not convert string to float: '-hi'"},
		{input: "banana: 0.99: hi", want: "Cannot add \"banana: 0.99: hi\".\nUsage: add <item_name>: <item_price>"},
		{input: "banana 0.99", want: "Cannot add \"banana 0.99\".\nUsage: add <item_name>: <item_price>"},
		{input: "apple: 0", want: `The price argument ("0") does not appear to be any of the following: float, an integer, or a string that can be parsed to a non-negative float`},
		{input: "Hotel Room: 255", want: "Item(Hotel Room, 255.0) added successfully."},
		{input: "yacht: 100000000000000000", want: `The price argument ("100000000000000000") is too large. Prices cannot exceed 10000000000000.0.`},
		{input: "yacht: 10000000000000.01", want: `The price argument ("10000000000000.01") is too large. Prices cannot exceed 10000000000000.0.`},
		{input: "yacht: -10000000000000000", want: `The price argument ("-1e+16") does not appear to be any of the following: float, an integer, or a string that can be parsed to a non-negative float`},
		{input: "yacht: 10000000000000", want: "Item(yacht, 10000000000000.0) added successfully."},
	}

	for _, step := range steps {
		e.AddItem(s, step.input)
		assert.Equal(t, step.want, s.Message, "input %q", step.input)
	}

	assert.Equal(t, 4, s.Pool.Size())
	banana, ok := s.Pool.Get("banana")
	require.True(t, ok)
	assert.Equal(t, int64(99), banana.Cents())
}

func TestEngine_DelItem(t *testing.T) {
	e := newTestEngine(t, 1)
	s := macbookSession(t)

	e.DelItem(s, "banana")
	assert.Equal(t, `Item named "banana" is not present in the item pool.`, s.Message)

	e.DelItem(s, "Macbook")
	assert.Equal(t, "Macbook removed successfully.", s.Message)
	assert.False(t, s.Pool.Contains("Macbook"))

	e.DelItem(s, "Macbook")
	assert.Equal(t, `Item named "Macbook" is not present in the item pool.`, s.Message)

	assert.Equal(t, 1, s.List.Len(), "the list keeps its own copy of removed items")
}

func TestEngine_RefreshList(t *testing.T) {
	e := newTestEngine(t, 3)
	s := entities.NewSession(seedPool(t), nil)

	e.RefreshList(s)

	require.GreaterOrEqual(t, s.List.Len(), 1)
	assert.LessOrEqual(t, s.List.Len(), 4)
	assert.Regexp(t, `^Shopping list with \d items has been created\.$`, s.Message)
}

func TestEngine_RefreshListQuantityRange(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(3)), nil, WithQuantityRange(2, 2))
	s := entities.NewSession(seedPool(t), nil)

	e.RefreshList(s)

	for _, entry := range s.List.Entries() {
		assert.Equal(t, 2, entry.Quantity)
	}
}

func TestEngine_RefreshListTotalTooLarge(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(1)), nil, WithQuantityRange(10000, 10000))
	pool := newPool(t, mustItem(t, "Jet", entities.MaxPrice), mustItem(t, "Yacht", entities.MaxPrice))
	s := entities.NewSession(pool, nil)

	e.RefreshList(s)

	assert.Equal(t, msgTotalTooLarge, s.Message)
	assert.Equal(t, 0, s.List.Len())
}

func TestEngine_RefreshListEmptyPool(t *testing.T) {
	e := newTestEngine(t, 1)
	s := entities.NewSession(nil, nil)

	e.RefreshList(s)

	assert.Equal(t, msgEmptyPool, s.Message)
}

func TestEngine_Show(t *testing.T) {
	e := newTestEngine(t, 1)
	s := macbookSession(t)

	e.Show(s, "list")
	assert.Contains(t, s.Message, "SHOPPING LIST\n- Macbook (1x) ... $1999.99\n")

	e.Show(s, "items")
	assert.Equal(t, "ITEMS\n- Macbook ... $1999.99\n", s.Message)

	e.Show(s, "everything")
	assert.Equal(t, "Cannot show everything.\nUsage: show list|items", s.Message)

	empty := entities.NewSession(nil, nil)
	e.ShowList(empty)
	assert.Equal(t, msgEmptyList, empty.Message)
}

func TestEngine_Quit(t *testing.T) {
	e := newTestEngine(t, 1)
	s := macbookSession(t)

	e.Quit(s)

	assert.False(t, s.Continue)
	assert.Equal(t, "Have a nice day!", s.Message)
}

func TestEngine_QuitLogsSessionDuration(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := NewEngine(rand.New(rand.NewSource(1)), zap.New(core))
	s := macbookSession(t)
	s.StartedAt = time.Now().Add(-time.Minute)

	e.Quit(s)

	entries := logs.FilterMessage("session finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, s.ID.String(), fields["session_id"])
	assert.GreaterOrEqual(t, fields["duration"], time.Minute)
}
