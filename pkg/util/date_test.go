package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "yesterday", "-5", "0"} {
		if _, ok := ParseTime(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestParseTimeIn(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"2000-01-01 08:30", time.Date(2000, 1, 1, 8, 30, 0, 0, cst)},
		{"2000-01-01 23", time.Date(2000, 1, 1, 23, 0, 0, 0, cst)},
		{"2000-01-01", time.Date(2000, 1, 1, 0, 0, 0, 0, cst)},
		{"2000-01-01T00:00:00Z", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"946684800", time.Date(2000, 1, 1, 8, 0, 0, 0, cst)},
	}
	for _, tc := range cases {
		got, ok := ParseTimeIn(tc.in, cst)
		if !ok {
			t.Fatalf("%q: expected ok", tc.in)
		}
		if !got.Equal(tc.want) || got.Hour() != tc.want.Hour() {
			t.Fatalf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
}
