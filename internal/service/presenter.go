package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

const totalLabel = "TOTAL"

// NoMask renders every price in clear.
const NoMask = -1

var ErrEmptyList = errors.New("shopping list is empty")

// Presenter renders the shopping list and the catalog as aligned text.
type Presenter struct{}

// NewPresenter creates a new Presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// RenderList renders the list followed by a TOTAL row. The price at row mask
// is replaced by question marks; mask == list.Len() hides the total.
// All prices share the width of the largest order among items and total.
func (p *Presenter) RenderList(list *entities.ShoppingList, mask int) (string, error) {
	entries := list.Entries()
	if len(entries) == 0 {
		return "", ErrEmptyList
	}

	total := list.TotalCents()
	maxOrder := entities.OrderOf(total)
	maxName := utf8.RuneCountInString(totalLabel)
	baseLen := maxName - 4
	for _, e := range entries {
		n := utf8.RuneCountInString(e.Item.Name())
		baseLen = max(baseLen, n)
		maxName = max(maxName, n)
		maxOrder = max(maxOrder, e.Item.Order())
	}

	var sb strings.Builder
	sb.WriteString("SHOPPING LIST\n")
	for i, e := range entries {
		padding := baseLen - utf8.RuneCountInString(e.Item.Name())
		fmt.Fprintf(&sb, "%s ...%s %s\n",
			e.Item.FormatListEntry(e.Quantity, true),
			dots(padding),
			e.Item.FormatPrice(e.Quantity, mask == i, maxOrder),
		)
	}

	totalPadding := maxName - utf8.RuneCountInString(totalLabel) + 5 + 2
	totalLine := fmt.Sprintf("%s ...%s %s",
		totalLabel,
		dots(totalPadding),
		entities.FormatAmount(total, mask == len(entries), maxOrder),
	)
	sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(totalLine)))
	sb.WriteString("\n")
	sb.WriteString(totalLine)
	sb.WriteString("\n")

	return sb.String(), nil
}

// RenderItems renders the whole catalog sorted by name.
func (p *Presenter) RenderItems(pool *entities.ItemPool) string {
	items := pool.Items()

	maxName, maxOrder := 0, 0
	for _, item := range items {
		maxName = max(maxName, utf8.RuneCountInString(item.Name()))
		maxOrder = max(maxOrder, item.Order())
	}

	var sb strings.Builder
	sb.WriteString("ITEMS\n")
	for _, item := range items {
		padding := maxName - utf8.RuneCountInString(item.Name())
		fmt.Fprintf(&sb, "%s ...%s %s\n",
			item.FormatListEntry(0, true),
			dots(padding),
			item.FormatPrice(1, false, maxOrder),
		)
	}

	return sb.String()
}

func dots(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(".", n)
}
