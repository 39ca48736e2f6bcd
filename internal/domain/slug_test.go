package domain

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Does Islam Allow X", "does-islam-allow-x"},
		{"punctuation stripped", "Why? Because: it's so!", "why-because-its-so"},
		{"whitespace collapsed", "  a   b\tc ", "a-b-c"},
		{"thai preserved", "อิสลามกับสันติภาพ", "อิสลามกับสันติภาพ"},
		{"thai tone marks kept", "เรื่องน้ำในอัลกุรอาน", "เรื่องน้ำในอัลกุรอาน"},
		{"mixed", "Jihad — ญิฮาด means struggle", "jihad-ญิฮาด-means-struggle"},
		{"empty", "   ", ""},
		{"underscores become hyphens", "a_b_c", "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdef "
	}
	slug := Slugify(long)
	if n := len([]rune(slug)); n > 50 {
		t.Errorf("slug length = %d, want <= 50", n)
	}
	if slug[len(slug)-1] == '-' {
		t.Errorf("slug %q must not end with a hyphen", slug)
	}
}

func TestFoldText(t *testing.T) {
	if got := FoldText("  HeLLo "); got != "hello" {
		t.Errorf("FoldText = %q, want %q", got, "hello")
	}
}
