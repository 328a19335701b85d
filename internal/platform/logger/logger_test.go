package logger

import "testing"

func TestRedactKVs(t *testing.T) {
	in := []any{"api_key", "sk-secret-value", "grade", 5, "Authorization", "Bearer abc"}
	out := redactKVs(in)

	if out[1] != "[REDACTED]" {
		t.Errorf("api_key value not redacted: %v", out[1])
	}
	if out[3] != 5 {
		t.Errorf("plain value mutated: %v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Errorf("authorization value not redacted: %v", out[5])
	}
	if in[1] != "sk-secret-value" {
		t.Error("input slice must not be mutated")
	}
}

func TestRedactKVs_OddLength(t *testing.T) {
	in := []any{"dangling"}
	out := redactKVs(in)
	if len(out) != 1 || out[0] != "dangling" {
		t.Errorf("unexpected output: %v", out)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for key, want := range map[string]bool{
		"api_key":        true,
		"gemini_api_key": true,
		"refresh_token":  true,
		"client_secret":  true,
		"grade":          false,
		"subject":        false,
	} {
		if got := isSensitiveKey(key); got != want {
			t.Errorf("isSensitiveKey(%q) = %v, want %v", key, got, want)
		}
	}
}
