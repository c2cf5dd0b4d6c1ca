package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petquest/internal/engine"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// resolveTask finds the task whose id starts with prefix.
func resolveTask(tasks []engine.Task, prefix string) (engine.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return engine.Task{}, errors.New("task id is required")
	}
	var matches []engine.Task
	for _, t := range tasks {
		if t.ID == prefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return engine.Task{}, fmt.Errorf("no task matches %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return engine.Task{}, fmt.Errorf("%q matches %d tasks, use more characters", prefix, len(matches))
	}
}

// resolveCategory accepts a category id or a case-insensitive name. Empty
// means uncategorized.
func resolveCategory(eng *engine.Engine, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	for _, c := range eng.Categories() {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", ref)
}

func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
