package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// seedCached drops a fake MP3 into the cache so Synthesize returns it
// without touching the network.
func seedCached(t *testing.T, dir, filename string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte("mp3"), 0644); err != nil {
		t.Fatalf("seed cache file: %v", err)
	}
}

func TestSynthesizeCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lang     string
		rate     float64
		wantFile string
	}{
		{"default language", "hello", "", 1.0, "tts_en_hello_normal.mp3"},
		{"explicit language", "bonjour", "fr", 1.0, "tts_fr_bonjour_normal.mp3"},
		{"slow variant", "hello", "en", 0.5, "tts_en_hello_slow.mp3"},
		{"multi word", "Good Morning", "en", 1.0, "tts_en_good_morning_normal.mp3"},
		{"language normalized", "hola", " ES ", 1.0, "tts_es_hola_normal.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			service := NewTTSService(dir)
			seedCached(t, dir, tt.wantFile)

			got, err := service.Synthesize(context.Background(), tt.text, tt.lang, tt.rate)
			if err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			if got != tt.wantFile {
				t.Errorf("Synthesize() = %s, want %s", got, tt.wantFile)
			}
		})
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	service := NewTTSService(t.TempDir())

	if _, err := service.Synthesize(context.Background(), "   ", "en", 1.0); err == nil {
		t.Error("Synthesize() with blank text should fail")
	}
}

func TestPrefetchWordsUsesCache(t *testing.T) {
	dir := t.TempDir()
	service := NewTTSService(dir)
	seedCached(t, dir, "tts_en_apple_normal.mp3")
	seedCached(t, dir, "tts_en_banana_normal.mp3")

	results, err := service.PrefetchWords(context.Background(), []string{"apple", "banana"}, "en", 1.0)
	if err != nil {
		t.Fatalf("PrefetchWords() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("PrefetchWords() returned %d results, want 2", len(results))
	}
	if results["apple"] != "tts_en_apple_normal.mp3" {
		t.Errorf("results[apple] = %s, want tts_en_apple_normal.mp3", results["apple"])
	}
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"EN", "en"},
		{"pt-BR", "pt-br"},
		{"  fr  ", "fr"},
		{"!!", "en"},
	}

	for _, tt := range tests {
		if got := normalizeLang(tt.in); got != tt.want {
			t.Errorf("normalizeLang(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
