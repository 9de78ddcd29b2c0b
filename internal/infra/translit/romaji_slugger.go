// Package translit derives URL-safe romanized slugs from Japanese source
// text using morphological analysis.
package translit

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gojp/kana"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"recruitcms/internal/domain/service"
)

// romajiSlugger implements service.SlugService. The kagome dictionary load is
// slow, so initialization runs fire-and-forget at construction; requests
// arriving before it completes take the fallback path instead of blocking.
// An initialization failure is logged once and pins the service in fallback
// mode permanently.
type romajiSlugger struct {
	logger *slog.Logger
	tok    atomic.Pointer[tokenizer.Tokenizer]
	ready  atomic.Bool
}

// NewRomajiSlugger is the constructor for romajiSlugger.
func NewRomajiSlugger(logger *slog.Logger) service.SlugService {
	s := &romajiSlugger{logger: logger}
	go s.init()

	return s
}

func (s *romajiSlugger) init() {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		s.logger.Error("Transliteration engine initialization failed, slugs will use fallback stripping",
			slog.Any("error", err),
		)

		return
	}

	s.tok.Store(tok)
	s.ready.Store(true)
	s.logger.Info("Transliteration engine ready")
}

// Ready reports whether the transliteration engine has finished initializing.
func (s *romajiSlugger) Ready() bool {
	return s.ready.Load()
}

// Slugify converts source text into a slug. It never fails and never returns
// an empty string for non-empty input: romanization first, then direct
// stripping of the source text, then a time-seeded synthetic slug.
func (s *romajiSlugger) Slugify(entityType, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if tok := s.tok.Load(); tok != nil {
		if slug := normalize(romanize(tok, text)); slug != "" {
			return slug
		}
	}

	if slug := normalize(text); slug != "" {
		return slug
	}

	// Last resort: unique-ish, time-dependent. Strict uniqueness is the
	// store's job via its unique constraint.
	return fmt.Sprintf("%s-ja-%d", entityType, time.Now().UnixMilli())
}

// romanize converts Japanese text into a lowercase Latin-script phonetic
// rendering. Tokens with a dictionary reading (katakana) go through
// kana-to-romaji conversion; everything else keeps its surface form.
func romanize(tok *tokenizer.Tokenizer, text string) string {
	tokens := tok.Tokenize(text)
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if reading, ok := t.Reading(); ok && reading != "" && reading != "*" {
			parts = append(parts, kana.KanaToRomaji(reading))

			continue
		}
		parts = append(parts, t.Surface)
	}

	return strings.ToLower(strings.Join(parts, " "))
}
