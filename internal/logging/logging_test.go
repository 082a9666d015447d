package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		logs    bool
		wantErr bool
	}{
		{"debug", true, false},
		{"info", true, false},
		{"disabled", false, false},
		{"loud", false, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log, err := New(&buf, tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
		log.Info().Str("word", "COLD").Msg("hello")
		if got := strings.Contains(buf.String(), "hello"); got != tt.logs {
			t.Errorf("New(%q): logged=%v, want %v (output %q)", tt.level, got, tt.logs, buf.String())
		}
	}
}
