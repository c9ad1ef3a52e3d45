package script

import (
	"strings"
	"testing"

	"github.com/milk9111/sentry/prefabs"
)

func TestBarkLine(t *testing.T) {
	src := []byte(`
line := ""
if state == "chase" {
    line = "halt!"
}
`)
	b, err := CompileBark(src)
	if err != nil {
		t.Fatalf("CompileBark: %v", err)
	}

	line, err := b.Line("chase")
	if err != nil {
		t.Fatalf("Line(chase): %v", err)
	}
	if line != "halt!" {
		t.Fatalf("line = %q, want \"halt!\"", line)
	}

	line, err = b.Line("patrol")
	if err != nil {
		t.Fatalf("Line(patrol): %v", err)
	}
	if line != "" {
		t.Fatalf("patrol should say nothing, got %q", line)
	}
}

func TestBarkCompileError(t *testing.T) {
	if _, err := CompileBark([]byte("if {")); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestBarkWithoutLine(t *testing.T) {
	b, err := CompileBark([]byte(`x := 1 + 2`))
	if err != nil {
		t.Fatalf("CompileBark: %v", err)
	}
	line, err := b.Line("chase")
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line != "" {
		t.Fatalf("script without a line var should be silent, got %q", line)
	}
}

func TestNilBarkIsSilent(t *testing.T) {
	var b *Bark
	line, err := b.Line("attack")
	if err != nil || line != "" {
		t.Fatalf("nil bark: line %q err %v", line, err)
	}
}

func TestGuardScript(t *testing.T) {
	src, err := prefabs.LoadScript("guard.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	b, err := CompileBark(src)
	if err != nil {
		t.Fatalf("CompileBark: %v", err)
	}
	for _, state := range []string{"chase", "attack", "patrol", "death"} {
		line, err := b.Line(state)
		if err != nil {
			t.Fatalf("Line(%s): %v", state, err)
		}
		if strings.TrimSpace(line) == "" {
			t.Fatalf("guard script has no line for %s", state)
		}
	}
	line, err := b.Line("idle")
	if err != nil {
		t.Fatalf("Line(idle): %v", err)
	}
	if line != "" {
		t.Fatalf("idle should be silent, got %q", line)
	}
}
