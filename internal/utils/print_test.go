package utils

import (
	"bytes"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/sahayak/internal/models"
)

func TestAttemptPrettyPrint(t *testing.T) {
	answer := "Foo\n\n**Sources:**\n  1. [X](http://x)\n"

	t.Run("raw prints text as is", func(t *testing.T) {
		var out bytes.Buffer
		err := AttemptPrettyPrint(&out, models.Turn{Role: models.RoleAssistant, Text: answer}, "tester", true, AutoStyle)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		testboil.FailTestIfDiff(t, out.String(), answer+"\n")
	})

	t.Run("rendered output keeps content", func(t *testing.T) {
		t.Setenv("COLUMNS", "100")
		var out bytes.Buffer
		err := AttemptPrettyPrint(&out, models.Turn{Role: models.RoleAssistant, Text: answer}, "tester", false, "notty")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got := out.String()
		testboil.AssertStringContains(t, got, "assistant")
		testboil.AssertStringContains(t, got, "Foo")
		testboil.AssertStringContains(t, got, "Sources:")
		if got == answer || got == answer+"\n" {
			t.Fatalf("expected markdown to be rendered, got: %q", got)
		}
	})

	t.Run("user role is shown as username", func(t *testing.T) {
		var out bytes.Buffer
		err := AttemptPrettyPrint(&out, models.Turn{Role: models.RoleUser, Text: "hello"}, "tester", false, "notty")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		testboil.AssertStringContains(t, out.String(), "tester")
	})

	t.Run("unknown style falls back to plain", func(t *testing.T) {
		var out bytes.Buffer
		err := AttemptPrettyPrint(&out, models.Turn{Role: models.RoleAssistant, Text: answer}, "tester", false, "no-such-style")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		testboil.AssertStringContains(t, out.String(), "**Sources:**")
	})
}

func TestTermWidth(t *testing.T) {
	t.Setenv("COLUMNS", "42")
	testboil.FailTestIfDiff(t, TermWidth(), 42)

	t.Setenv("COLUMNS", "garbage")
	if TermWidth() <= 0 {
		t.Fatal("expected positive fallback width")
	}
}
