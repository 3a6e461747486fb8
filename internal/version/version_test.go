package version

import (
	"strings"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2025-12-04", expected: 0},
		{name: "next day after epoch", date: "2025-12-05", expected: 1},
		{name: "one year later", date: "2026-12-04", expected: 365},
		{name: "date with leap years included", date: "2032-12-04", expected: 2557},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-03", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildID(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate = ""
	if s := String(); !strings.Contains(s, "dev build") {
		t.Errorf("String() = %q, want a dev build", s)
	}

	BuildDate, BuildCommit = "2025-12-14", ""
	if s := String(); !strings.Contains(s, "build 10") || !strings.Contains(s, "commit[unknown]") {
		t.Errorf("String() = %q", s)
	}
}
