package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testVar = "MIMI_TEST_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"100", 100},
		{"-10", -10},
		{"0", 0},
		{"42.5", 7},
		{"not-a-number", 7},
		{"", 7},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(testVar, 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"500ms", 500 * time.Millisecond},
		{"60", time.Minute},
		{"soon", time.Minute},
		{"", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(testVar, time.Minute))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"yes", true, true},
		{"yes", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsBool(testVar, tt.def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv(testVar, "")
	assert.Nil(t, getEnvAsList(testVar))

	t.Setenv(testVar, " 10.0.0.1 ,10.0.0.2,,")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(testVar))
}

func TestGetEnv_EmptyValueIsKept(t *testing.T) {
	t.Setenv(testVar, "")
	assert.Equal(t, "", getEnv(testVar, "fallback"))
}
