package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

func testLogger(buf *bytes.Buffer) *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: buf,
		Name:   "test",
	})
}

func mustBuild(t *testing.T, reg *Registry, name string, p Params) Step {
	t.Helper()
	step, err := reg.Build(name, p)
	if err != nil {
		t.Fatalf("Build(%s) failed: %v", name, err)
	}
	return step
}

func TestPipeline_Run(t *testing.T) {
	var buf bytes.Buffer
	reg := DefaultRegistry()
	p := New("web", testLogger(&buf),
		mustBuild(t, reg, "trim", nil),
		mustBuild(t, reg, "upper", nil),
		mustBuild(t, reg, "url-encode", nil),
	)

	result, err := p.Run(context.Background(), "  a b&c ")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Output != "A+B%26C" {
		t.Errorf("expected output %q, got %q", "A+B%26C", result.Output)
	}
	if result.RunID == "" {
		t.Error("expected a run id")
	}
	if !result.Modified {
		t.Error("expected result to be modified")
	}
	if len(result.AuditLog) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(result.AuditLog))
	}
	for i, name := range []string{"trim", "upper", "url-encode"} {
		if result.AuditLog[i].Step != name {
			t.Errorf("audit entry %d: expected step %s, got %s", i, name, result.AuditLog[i].Step)
		}
		if !result.AuditLog[i].Modified {
			t.Errorf("audit entry %d: expected modified", i)
		}
	}
	if !strings.Contains(buf.String(), "step url-encode completed") {
		t.Errorf("expected step timing in log, got:\n%s", buf.String())
	}
}

func TestPipeline_UnmodifiedStep(t *testing.T) {
	reg := DefaultRegistry()
	p := New("noop", mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelOff}),
		mustBuild(t, reg, "trim", nil),
		mustBuild(t, reg, "lower", nil),
	)

	result, err := p.Run(context.Background(), "already clean")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Modified {
		t.Error("expected result to be unmodified")
	}
	for _, e := range result.AuditLog {
		if e.Modified || e.InputLen != e.OutputLen {
			t.Errorf("step %s: unexpected change %+v", e.Step, e)
		}
	}
}

func TestPipeline_StepError(t *testing.T) {
	var buf bytes.Buffer
	reg := DefaultRegistry()
	p := New("decode", testLogger(&buf),
		mustBuild(t, reg, "trim", nil),
		mustBuild(t, reg, "url-decode", nil),
		mustBuild(t, reg, "upper", nil),
	)

	result, err := p.Run(context.Background(), " 100%zz ")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsFormat(err) {
		t.Errorf("expected format error, got %v", err)
	}
	if !errors.IsModuleError(err, errors.ModulePipeline) {
		t.Errorf("expected pipeline module error, got module %q", errors.GetErrorModule(err))
	}
	if result == nil || len(result.AuditLog) != 2 {
		t.Fatalf("expected partial result with 2 audit entries, got %+v", result)
	}
	if result.AuditLog[1].Error == nil {
		t.Error("expected failed step to carry its error")
	}
	if result.Output != "100%zz" {
		t.Errorf("expected output of last good step, got %q", result.Output)
	}
	if !strings.Contains(buf.String(), "step url-decode failed") {
		t.Errorf("expected failure in log, got:\n%s", buf.String())
	}
}

func TestPipeline_Cancelled(t *testing.T) {
	reg := DefaultRegistry()
	quiet := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelOff})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := New("c", quiet, mustBuild(t, reg, "upper", nil)).Run(ctx, "x")
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(result.AuditLog) != 0 {
		t.Errorf("expected no steps to run, got %d", len(result.AuditLog))
	}

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	canceller := NewStep("cancel", func(s string) (string, error) {
		cancel()
		return s, nil
	})
	result, err = New("c", quiet, canceller, mustBuild(t, reg, "upper", nil)).Run(ctx, "x")
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(result.AuditLog) != 1 || result.Output != "x" {
		t.Errorf("expected to stop after the first step, got %+v", result)
	}
}

func TestPipeline_StepNames(t *testing.T) {
	reg := DefaultRegistry()
	p := New("n", nil).
		Add(mustBuild(t, reg, "html-encode", nil)).
		Add(mustBuild(t, reg, "wrap", Params{"width": 20}))

	if p.Len() != 2 {
		t.Errorf("expected 2 steps, got %d", p.Len())
	}
	names := p.StepNames()
	if names[0] != "html-encode" || names[1] != "wrap" {
		t.Errorf("unexpected step names %v", names)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	echo := func(Params) (Step, error) { return NewStep("echo", func(s string) (string, error) { return s, nil }), nil }

	if err := reg.Register("echo", "returns its input", echo); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register("echo", "again", echo); !errors.IsInvalidArgument(err) {
		t.Errorf("expected duplicate registration to fail, got %v", err)
	}
	if err := reg.Register("", "nameless", echo); !errors.IsInvalidArgument(err) {
		t.Errorf("expected empty name to fail, got %v", err)
	}
	if !reg.Has("echo") || reg.Has("missing") {
		t.Error("Has reports wrong membership")
	}

	_, err := reg.Build("missing", nil)
	if mdwerror.GetCode(err) != mdwerror.CodeNotFound {
		t.Errorf("expected not found, got %v", err)
	}

	list := DefaultRegistry().List()
	if len(list) != len(builtins) {
		t.Errorf("expected %d built-in steps, got %d", len(builtins), len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List not sorted at %d: %s >= %s", i, list[i-1].Name, list[i].Name)
		}
	}
}

func TestParams(t *testing.T) {
	p := Params{"i": int64(7), "f": 3.0, "s": "12", "b": "true", "bad": "x", "n": 2.5}

	if v, err := p.Int("i", 0); err != nil || v != 7 {
		t.Errorf("Int(i) = %d, %v", v, err)
	}
	if v, err := p.Int("f", 0); err != nil || v != 3 {
		t.Errorf("Int(f) = %d, %v", v, err)
	}
	if v, err := p.Int("s", 0); err != nil || v != 12 {
		t.Errorf("Int(s) = %d, %v", v, err)
	}
	if v, err := p.Int("unset", 42); err != nil || v != 42 {
		t.Errorf("Int(unset) = %d, %v", v, err)
	}
	if _, err := p.Int("n", 0); err == nil {
		t.Error("expected error for fractional int")
	}
	if v, err := p.Bool("b", false); err != nil || !v {
		t.Errorf("Bool(b) = %v, %v", v, err)
	}
	if _, err := p.Bool("bad", false); err == nil {
		t.Error("expected error for non-boolean")
	}
	if v := p.String("i", ""); v != "7" {
		t.Errorf("String(i) = %q", v)
	}
}
