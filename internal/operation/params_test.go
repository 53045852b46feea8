package operation

import (
	"context"
	"reflect"
	"testing"
)

func TestParamsString(t *testing.T) {
	p := Params{"name": "report.pdf", "empty": "", "number": 42}

	if got := p.String("name", "fallback"); got != "report.pdf" {
		t.Errorf("String(name) = %q, want report.pdf", got)
	}
	if got := p.String("empty", "fallback"); got != "fallback" {
		t.Errorf("String(empty) = %q, want fallback", got)
	}
	if got := p.String("number", "fallback"); got != "fallback" {
		t.Errorf("String(number) = %q, want fallback for mistyped value", got)
	}
	if got := p.String("missing", "fallback"); got != "fallback" {
		t.Errorf("String(missing) = %q, want fallback", got)
	}

	var nilParams Params
	if got := nilParams.String("any", "fallback"); got != "fallback" {
		t.Errorf("nil params String = %q, want fallback", got)
	}
}

func TestParamsInt(t *testing.T) {
	p := Params{
		"plain":   7,
		"decoded": float64(10), // JSON numbers arrive as float64
		"text":    "25",
		"garbage": "not a number",
	}

	if got := p.Int("plain", 1); got != 7 {
		t.Errorf("Int(plain) = %d, want 7", got)
	}
	if got := p.Int("decoded", 1); got != 10 {
		t.Errorf("Int(decoded) = %d, want 10", got)
	}
	if got := p.Int("text", 1); got != 25 {
		t.Errorf("Int(text) = %d, want 25", got)
	}
	if got := p.Int("garbage", 1); got != 1 {
		t.Errorf("Int(garbage) = %d, want default 1", got)
	}
	if got := p.Int("missing", 5); got != 5 {
		t.Errorf("Int(missing) = %d, want default 5", got)
	}
}

func TestParamsBool(t *testing.T) {
	p := Params{"flag": true, "text": "true", "bad": "maybe"}

	if !p.Bool("flag", false) {
		t.Error("Bool(flag) = false, want true")
	}
	if !p.Bool("text", false) {
		t.Error("Bool(text) = false, want true")
	}
	if p.Bool("bad", false) {
		t.Error("Bool(bad) = true, want default false")
	}
	if !p.Bool("missing", true) {
		t.Error("Bool(missing) = false, want default true")
	}
}

func TestParamsStringSlice(t *testing.T) {
	p := Params{
		"typed":   []string{"a.pdf", "b.pdf"},
		"decoded": []any{"x.pdf", 3, "y.pdf"}, // non-strings are skipped
		"scalar":  "single",
	}

	if got := p.StringSlice("typed"); !reflect.DeepEqual(got, []string{"a.pdf", "b.pdf"}) {
		t.Errorf("StringSlice(typed) = %v", got)
	}
	if got := p.StringSlice("decoded"); !reflect.DeepEqual(got, []string{"x.pdf", "y.pdf"}) {
		t.Errorf("StringSlice(decoded) = %v", got)
	}
	if got := p.StringSlice("scalar"); got != nil {
		t.Errorf("StringSlice(scalar) = %v, want nil", got)
	}
	if got := p.StringSlice("missing"); got != nil {
		t.Errorf("StringSlice(missing) = %v, want nil", got)
	}
}

func TestOutcomeEnvelope(t *testing.T) {
	out := Success("email sent to bob@example.com", map[string]any{"recipient": "bob@example.com"})

	env := out.Envelope()
	if env["status"] != "success" {
		t.Errorf("status = %v", env["status"])
	}
	if env["message"] != "email sent to bob@example.com" {
		t.Errorf("message = %v", env["message"])
	}
	if env["recipient"] != "bob@example.com" {
		t.Errorf("recipient = %v", env["recipient"])
	}
	if env["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(KeySendEmail, func(ctx context.Context, p Params) Outcome {
		return Success("ok", nil)
	})

	if !r.Known(KeySendEmail) {
		t.Error("registered key not known")
	}
	if r.Known(Key{"email", "teleport"}) {
		t.Error("unregistered key reported known")
	}
	if _, ok := r.Lookup(KeySendEmail); !ok {
		t.Error("Lookup failed for registered key")
	}
}
