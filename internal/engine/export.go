package engine

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Export is the document written by ExportYAML.
type Export struct {
	ExportedAt time.Time `yaml:"exported_at"`
	Mood       Mood      `yaml:"mood"`
	State      State     `yaml:"state"`
}

// ExportYAML writes a snapshot of the whole state as YAML.
func (e *Engine) ExportYAML(w io.Writer) error {
	e.mu.Lock()
	doc := Export{ExportedAt: e.clock.Now(), Mood: e.mood, State: *e.st.clone()}
	e.mu.Unlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return enc.Close()
}
