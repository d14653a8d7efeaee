package console

import (
	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

type QuizEngine interface {
	ProcessAnswer(s *entities.Session, raw string)
	Ask(s *entities.Session)
	RefreshList(s *entities.Session)
	Show(s *entities.Session, what string)
	AddItem(s *entities.Session, input string)
	DelItem(s *entities.Session, name string)
	Quit(s *entities.Session)
}
