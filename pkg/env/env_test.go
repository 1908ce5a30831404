package env

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("VK_TEST_SET", "value")
	t.Setenv("VK_TEST_PADDED", "  padded  ")
	t.Setenv("VK_TEST_BLANK", "   ")

	if got := Get("VK_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := Get("VK_TEST_PADDED", "fallback"); got != "padded" {
		t.Fatalf("expected padded trimmed, got %q", got)
	}
	if got := Get("VK_TEST_BLANK", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank, got %q", got)
	}
	if got := Get("VK_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for unset, got %q", got)
	}
}
