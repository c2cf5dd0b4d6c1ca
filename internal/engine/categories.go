package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"petquest/internal/catalog"
)

func (e *Engine) AddCategory(ctx context.Context, name, color string) (catalog.Category, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return catalog.Category{}, ErrEmptyCategoryName
	}
	c := catalog.Category{ID: uuid.NewString(), Name: n, Color: strings.TrimSpace(color)}

	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.st.clone()
	next.Categories = append(next.Categories, c)
	if err := e.commit(ctx, next, KeyCategories); err != nil {
		return catalog.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes a category. Tasks keep the dangling id and display
// as Uncategorized.
func (e *Engine) DeleteCategory(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.st.clone()
	kept := next.Categories[:0]
	for _, c := range next.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(e.st.Categories) {
		return nil
	}
	next.Categories = kept
	return e.commit(ctx, next, KeyCategories)
}

func (e *Engine) Categories() []catalog.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]catalog.Category(nil), e.st.Categories...)
}

// CategoryName resolves id for display.
func (e *Engine) CategoryName(id string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.CategoryName(id)
}
