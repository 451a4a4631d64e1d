package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestLoggerStampsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Output: &buf, Component: ComponentStore})

	l.Info("dispatched", FieldAction, "add-budget")
	l.WithComponent(ComponentPersist).Debug("saved")

	out := buf.String()
	if !strings.Contains(out, "component=store") || !strings.Contains(out, "action=add-budget") {
		t.Fatalf("missing fields in %q", out)
	}
	if !strings.Contains(out, "component=persist") {
		t.Fatalf("sub-component not stamped in %q", out)
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().WithOperation(OpSave).WithError(errors.New("boom")).WithError(nil)
	if f[FieldOperation] != OpSave || f[FieldError] != "boom" {
		t.Fatalf("unexpected fields: %v", f)
	}
	if len(f.ToSlice()) != 4 {
		t.Fatalf("expected 4 slice entries, got %d", len(f.ToSlice()))
	}
}

func TestLogFieldsWithExpense(t *testing.T) {
	f := NewFields().WithExpense("e1", "Coffee", "5.00", "2")
	if f[FieldExpenseID] != "e1" || f[FieldExpenseName] != "Coffee" || f[FieldAmount] != "5.00" || f[FieldCategory] != "2" {
		t.Fatalf("unexpected fields: %v", f)
	}
}
