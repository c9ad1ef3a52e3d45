// Package script runs the small tengo hooks prefabs can attach to behavior
// state changes. Scripts are compiled once and re-run per state entry; a
// broken script never affects the state machine itself.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Bark is a compiled state-entry hook. The script receives the entered state
// name in `state` and reports its flavor line in `line`.
type Bark struct {
	compiled *tengo.Compiled
}

func CompileBark(src []byte) (*Bark, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "text"))
	if err := s.Add("state", ""); err != nil {
		return nil, fmt.Errorf("script: add state var: %w", err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile bark: %w", err)
	}
	return &Bark{compiled: compiled}, nil
}

// Line runs the hook for one state entry. An empty line means the script has
// nothing to say for this state. Not safe for concurrent use; barks belong
// to a single sentry.
func (b *Bark) Line(state string) (string, error) {
	if b == nil || b.compiled == nil {
		return "", nil
	}
	if err := b.compiled.Set("state", state); err != nil {
		return "", fmt.Errorf("script: set state: %w", err)
	}
	if err := b.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: run bark: %w", err)
	}
	v := b.compiled.Get("line")
	if v == nil || v.IsUndefined() {
		return "", nil
	}
	return v.String(), nil
}
