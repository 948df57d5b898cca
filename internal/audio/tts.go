package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// TTSService fetches spoken audio for words and sentences and caches the
// resulting MP3 files on disk
type TTSService struct {
	audioDir string
	client   *http.Client
}

const ttsRequestTimeout = 10 * time.Second

var (
	filenameSanitizer = regexp.MustCompile(`[^a-z0-9_]+`)
	langSanitizer     = regexp.MustCompile(`[^a-z0-9-]+`)
)

// NewTTSService creates a new TTS service caching under audioDir
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// Synthesize converts text to speech in the given language at the given
// playback rate and returns the cached filename (not the full path). Rates
// below 1.0 request the slow variant; language and rate are both part of
// the cache key so the variants can coexist. An empty lang means English.
func (s *TTSService) Synthesize(ctx context.Context, text, lang string, rate float64) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	sanitized = filenameSanitizer.ReplaceAllString(sanitized, "")
	if sanitized == "" {
		return "", fmt.Errorf("nothing to synthesize")
	}

	lang = normalizeLang(lang)

	variant := "normal"
	if rate < 1.0 {
		variant = "slow"
	}

	filename := fmt.Sprintf("tts_%s_%s_%s.mp3", lang, sanitized, variant)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := s.fetchGoogleTTS(ctx, text, lang, rate, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// normalizeLang lowercases a BCP 47 style tag and strips anything that
// cannot appear in one. Defaults to English.
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	lang = langSanitizer.ReplaceAllString(lang, "")
	if lang == "" {
		return "en"
	}
	return lang
}

// PrefetchWords warms the cache for a set of words ahead of a speech session
func (s *TTSService) PrefetchWords(ctx context.Context, words []string, lang string, rate float64) (map[string]string, error) {
	results := make(map[string]string)

	for _, word := range words {
		filename, err := s.Synthesize(ctx, word, lang, rate)
		if err != nil {
			return results, fmt.Errorf("failed to generate audio for '%s': %w", word, err)
		}
		results[word] = filename
	}

	return results, nil
}

// fetchGoogleTTS uses Google Translate's text-to-speech endpoint, which
// needs no API key
func (s *TTSService) fetchGoogleTTS(ctx context.Context, text, lang string, rate float64, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))
	if rate < 1.0 {
		params.Set("ttsspeed", "0.24")
	}

	fullURL := baseURL + "?" + params.Encode()

	reqCtx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

