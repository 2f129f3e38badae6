package assets

import "testing"

func TestNormalize(t *testing.T) {
	n := NewNormalizer("/storage")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative path", "heroes/a.jpg", "/storage/heroes/a.jpg"},
		{"leading slash", "/heroes/a.jpg", "/storage/heroes/a.jpg"},
		{"extra slashes", "//heroes//a.jpg", "//heroes//a.jpg"}, // protocol-relative, untouched
		{"doubled separator", "heroes//a.jpg", "/storage/heroes/a.jpg"},
		{"separator run", "heroes///bulk////a.jpg", "/storage/heroes/bulk/a.jpg"},
		{"already prefixed", "/storage/heroes/a.jpg", "/storage/heroes/a.jpg"},
		{"exact prefix", "/storage", "/storage"},
		{"http url", "http://example.org/a.jpg", "http://example.org/a.jpg"},
		{"https url", "https://example.org/a.jpg", "https://example.org/a.jpg"},
		{"data uri", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"empty stays empty", "", ""},
		{"lookalike sibling is prefixed", "storage-old/a.jpg", "/storage/storage-old/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent: normalizing twice must equal normalizing once,
// for every input shape — no double prefixing.
func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer("/storage")

	inputs := []string{
		"heroes/a.jpg",
		"heroes//a.jpg",
		"/heroes/a.jpg",
		"/storage/heroes/a.jpg",
		"https://cdn.example.org/x.png",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeTrailingSlashConfig(t *testing.T) {
	n := NewNormalizer("/storage/")
	if got := n.Normalize("a.jpg"); got != "/storage/a.jpg" {
		t.Errorf("trailing slash in config doubled the separator: %q", got)
	}
}

func TestNormalizeCDNBase(t *testing.T) {
	n := NewNormalizer("https://cdn.example.org/storage")
	if got := n.Normalize("heroes/a.jpg"); got != "https://cdn.example.org/storage/heroes/a.jpg" {
		t.Errorf("Normalize = %q", got)
	}
	// Second application must recognize the absolute URL and stop.
	if got := n.Normalize(n.Normalize("heroes/a.jpg")); got != "https://cdn.example.org/storage/heroes/a.jpg" {
		t.Errorf("double normalize = %q", got)
	}
}

func TestNormalizeUnconfigured(t *testing.T) {
	n := NewNormalizer("")
	if got := n.Normalize("heroes/a.jpg"); got != "heroes/a.jpg" {
		t.Errorf("unconfigured normalizer should pass through, got %q", got)
	}
}
