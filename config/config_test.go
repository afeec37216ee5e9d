package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		entry, key, value string
	}{
		{"PORT=8080", "PORT", "8080"},
		{"DATABASE_URL=postgres://u:p@h/db?a=b", "DATABASE_URL", "postgres://u:p@h/db?a=b"},
		{"EMPTY=", "EMPTY", ""},
		{"NOVALUE", "NOVALUE", ""},
	}
	for _, tt := range tests {
		key, value := split(tt.entry)
		if key != tt.key || value != tt.value {
			t.Errorf("split(%q) = %q, %q; want %q, %q", tt.entry, key, value, tt.key, tt.value)
		}
	}
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":           "9090",
		"BAD_INT":        "nine",
		"SEED":           "true",
		"BAD_BOOL":       "maybe",
		"DELAY_MS":       "1500",
		"NEGATIVE":       "-1",
		"ORIGINS":        " https://a.example , ,https://b.example",
		"EMPTY_ORIGINS":  "",
		"EXPLICIT_EMPTY": "",
	}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q", got)
	}
	if got := GetString(c, "EXPLICIT_EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EXPLICIT_EMPTY) = %q, want empty", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString(nil) = %q", got)
	}

	if got := GetInt(c, "PORT", 1); got != 9090 {
		t.Errorf("GetInt(PORT) = %d", got)
	}
	if got := GetInt(c, "BAD_INT", 7); got != 7 {
		t.Errorf("GetInt(BAD_INT) = %d", got)
	}

	if got := GetBool(c, "SEED", false); !got {
		t.Errorf("GetBool(SEED) = false")
	}
	if got := GetBool(c, "BAD_BOOL", true); !got {
		t.Errorf("GetBool(BAD_BOOL) = false, want default")
	}

	if got := GetDuration(c, "DELAY_MS", time.Millisecond, time.Second); got != 1500*time.Millisecond {
		t.Errorf("GetDuration(DELAY_MS) = %v", got)
	}
	if got := GetDuration(c, "NEGATIVE", time.Millisecond, time.Second); got != time.Second {
		t.Errorf("GetDuration(NEGATIVE) = %v, want default", got)
	}
	if got := GetDuration(c, "MISSING", time.Second, 3*time.Second); got != 3*time.Second {
		t.Errorf("GetDuration(MISSING) = %v", got)
	}

	want := []string{"https://a.example", "https://b.example"}
	if got := GetList(c, "ORIGINS"); !reflect.DeepEqual(got, want) {
		t.Errorf("GetList(ORIGINS) = %v, want %v", got, want)
	}
	if got := GetList(c, "EMPTY_ORIGINS"); len(got) != 0 {
		t.Errorf("GetList(EMPTY_ORIGINS) = %v, want empty", got)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_TEST_FROM_FILE=file\nFOLIO_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("FOLIO_TEST_PRESET", "env")
	t.Cleanup(func() { os.Unsetenv("FOLIO_TEST_FROM_FILE") })

	c := Load()
	if got := GetString(c, "FOLIO_TEST_FROM_FILE", ""); got != "file" {
		t.Errorf("FOLIO_TEST_FROM_FILE = %q, want %q", got, "file")
	}
	if got := GetString(c, "FOLIO_TEST_PRESET", ""); got != "env" {
		t.Errorf("FOLIO_TEST_PRESET = %q, want environment value to win", got)
	}
}
