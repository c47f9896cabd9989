package progrock_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/figc/internal/adapters/telemetry/progrock"
)

func TestConsoleWriter_ReplaysStderrOnFailure(t *testing.T) {
	var out strings.Builder
	rec := progrock.NewRecorder(progrock.NewConsoleWriter(&out))

	v := rec.Record("render fig/a.tex")
	if _, err := v.Stderr().Write([]byte("! Undefined control sequence.\n")); err != nil {
		t.Fatalf("failed to write to vertex stderr: %v", err)
	}
	v.Complete(errors.New("exit status 1"))

	if err := rec.Close(); err != nil {
		t.Fatalf("failed to close recorder: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "render fig/a.tex") {
		t.Errorf("expected output to name the failed vertex, got: %q", got)
	}
	if !strings.Contains(got, "! Undefined control sequence.") {
		t.Errorf("expected output to carry the buffered error stream, got: %q", got)
	}
}

func TestConsoleWriter_DiscardsStderrOnSuccess(t *testing.T) {
	var out strings.Builder
	rec := progrock.NewRecorder(progrock.NewConsoleWriter(&out))

	v := rec.Record("render fig/b.tex")
	if _, err := v.Stderr().Write([]byte("Overfull \\hbox (badness 10000)\n")); err != nil {
		t.Fatalf("failed to write to vertex stderr: %v", err)
	}
	v.Complete(nil)

	if err := rec.Close(); err != nil {
		t.Fatalf("failed to close recorder: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output for a clean vertex, got: %q", out.String())
	}
}
