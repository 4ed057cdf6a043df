package main

import "testing"

func TestCleanClipboardText(t *testing.T) {
	tcs := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"  7  \n", "7"},
		{"\r\n\r\n4\r\n9", "4"},
		{"3\t", "3"},
		{"1\x002\x1b3", "123"},
		{"123456789", "1234"},
		{"", ""},
		{"\n \n", ""},
	}
	for _, tc := range tcs {
		if got := cleanClipboardText(tc.in); got != tc.want {
			t.Fatalf("cleanClipboardText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("truncateRunes = %q, want %q", got, "hé")
	}
	if got := truncateRunes("ab", 4); got != "ab" {
		t.Fatalf("truncateRunes = %q, want %q", got, "ab")
	}
}
