package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d := Date{Time: time.Date(2026, 10, 15, 9, 30, 12, 345_000_000, time.UTC)}
	if got := d.String(); got != "2026-10-15T09:30:12.345Z" {
		t.Fatalf("unexpected format: %s", got)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("expected %v, got %v", d, back)
	}
}

func TestDateEmptyIsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil || string(b) != "null" {
		t.Fatalf("expected null, got %s (err=%v)", b, err)
	}
	d := NewDate(2025, 1, 1)
	if err := json.Unmarshal([]byte("null"), &d); err != nil || !d.IsEmpty() {
		t.Fatalf("expected empty date after null, got %v (err=%v)", d, err)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2025-03-04", NewDate(2025, 3, 4), true},
		{"2025-03-04T00:00:00Z", NewDate(2025, 3, 4), true},
		{"2025-03-04T02:00:00+02:00", NewDate(2025, 3, 4), true},
		{"", Date{}, true},
		{"04/03/2025", Date{}, false},
	}
	for i, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok && (err != nil || !got.Equal(tc.want.Time)) {
			t.Fatalf("case %d expected %v, got %v (err=%v)", i, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDraftValidate(t *testing.T) {
	good := DraftExpense{
		Name:     "Coffee",
		Amount:   Money{Cents: 500},
		Category: "2",
		Date:     NewDate(2025, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*DraftExpense)
		want   error
	}{
		{func(d *DraftExpense) { d.Name = "" }, ErrEmptyName},
		{func(d *DraftExpense) { d.Name = "   " }, ErrEmptyName},
		{func(d *DraftExpense) { d.Category = "" }, ErrEmptyCategory},
		{func(d *DraftExpense) { d.Category = "99" }, ErrUnknownCategory},
		{func(d *DraftExpense) { d.Amount = Money{} }, ErrInvalidAmount},
		{func(d *DraftExpense) { d.Date = Date{} }, ErrEmptyDate},
	}
	for i, tc := range cases {
		d := good
		tc.mutate(&d)
		if err := d.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestDraftWithID(t *testing.T) {
	d := DraftExpense{Name: "Rent", Amount: Money{Cents: 70000}, Category: "3", Date: NewDate(2025, 2, 1)}
	e := d.WithID("abc")
	if e.ID != "abc" || e.Draft() != d {
		t.Fatalf("unexpected expense: %+v", e)
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID("2")
	if !ok || c.Name != "Comida" {
		t.Fatalf("unexpected category: %+v ok=%v", c, ok)
	}
	if _, ok := CategoryByID(""); ok {
		t.Fatalf("empty id must not match")
	}
	cats := Categories()
	cats[0].Name = "changed"
	if Categories()[0].Name != "Ahorro" {
		t.Fatalf("catalog must not be mutable through Categories()")
	}
}
