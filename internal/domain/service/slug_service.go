package service

// SlugService derives URL-safe slugs for content routes. For Japanese source
// text it attempts phonetic romanization; otherwise, or while the
// transliteration engine is still initializing, it falls back to stripping
// the source text through the same normalization rules.
type SlugService interface {
	// Ready reports whether the transliteration engine has finished
	// initializing. Callers never block on readiness; an unready engine
	// simply routes Slugify through the fallback path.
	Ready() bool

	// Slugify never fails and never returns an empty string for non-empty
	// input. entityType seeds the guaranteed-unique final fallback
	// ("{entityType}-ja-{timestamp}").
	Slugify(entityType, text string) string
}
