package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_ReturnsInfoLevelLogger(t *testing.T) {
	logger := New()

	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), zerolog.InfoLevel)
	}
}

func TestNewWithLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			logger := NewWithLevel(tt.input)
			if logger.GetLevel() != tt.want {
				t.Errorf("NewWithLevel(%q) level = %v, want %v", tt.input, logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestParseLevel_InvalidDefaultsToInfo(t *testing.T) {
	for _, input := range []string{"", "invalid", "verbose", "123"} {
		t.Run(input, func(t *testing.T) {
			if got := ParseLevel(input); got != zerolog.InfoLevel {
				t.Errorf("ParseLevel(%q) = %v, want %v", input, got, zerolog.InfoLevel)
			}
		})
	}
}

func TestParseLevel_TrimsWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"  debug  ", zerolog.DebugLevel},
		{"\twarn\n", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewConsole_Level(t *testing.T) {
	if got := NewConsole("error").GetLevel(); got != zerolog.ErrorLevel {
		t.Errorf("NewConsole level = %v, want %v", got, zerolog.ErrorLevel)
	}
}
