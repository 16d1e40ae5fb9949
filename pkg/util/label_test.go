package util

import "testing"

func TestTruncateLabelShort(t *testing.T) {
	if got := TruncateLabel("2024-01-02", 10); got != "2024-01-02" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestTruncateLabelLong(t *testing.T) {
	if got := TruncateLabel("2024-01-02T10:10:10Z", 10); got != "2024-01-02" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestTruncateLabelZeroMax(t *testing.T) {
	if got := TruncateLabel("2024-01-02", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestTruncateLabelRunes(t *testing.T) {
	if got := TruncateLabel("ééééé", 3); got != "ééé" {
		t.Fatalf("unexpected label %q", got)
	}
}
