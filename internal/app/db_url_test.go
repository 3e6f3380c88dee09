package app

import (
	"strings"
	"testing"
)

func TestNormalizeDBURL(t *testing.T) {
	t.Run("appends disable_prepared_binary_result", func(t *testing.T) {
		out := normalizeDBURL("postgres://u:p@localhost:5432/gtsportsline?sslmode=disable", true)
		if !strings.Contains(out, "disable_prepared_binary_result=yes") {
			t.Errorf("out = %q", out)
		}
	})

	t.Run("leaves url alone when disabled", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/gtsportsline"
		if out := normalizeDBURL(in, false); out != in {
			t.Errorf("out = %q", out)
		}
	})

	t.Run("does not override explicit setting", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/gtsportsline?disable_prepared_binary_result=no"
		out := normalizeDBURL(in, true)
		if !strings.Contains(out, "disable_prepared_binary_result=no") {
			t.Errorf("out = %q", out)
		}
	})
}

func TestDBNameFromURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/gtsportsline?sslmode=disable": "gtsportsline",
		"host=localhost dbname=gtsportsline sslmode=disable":         "gtsportsline",
		"":    "",
		"%%%": "",
	}
	for in, want := range cases {
		if got := dbNameFromURL(in); got != want {
			t.Errorf("dbNameFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}
