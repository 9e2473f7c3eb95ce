package i18n

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLang is the site's primary language; lookups for unknown
// languages or missing keys fall back to it before falling back to
// the key itself.
const DefaultLang = "es"

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator is a pure string-table lookup over the embedded locale
// bundles. It never fails a lookup: a missing translation degrades to
// the default language, then to the key.
type Translator struct {
	bundles map[string]map[string]string
}

// New loads every embedded locale bundle. The bundle's language code
// is the file name without extension (locales/es.yaml -> "es").
func New() (*Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale bundles: %w", err)
	}

	bundles := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read bundle %s: %w", entry.Name(), err)
		}

		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("invalid bundle %s: %w", entry.Name(), err)
		}

		lang := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		bundles[lang] = table
	}

	if _, ok := bundles[DefaultLang]; !ok {
		return nil, fmt.Errorf("default language bundle %q is missing", DefaultLang)
	}

	return &Translator{bundles: bundles}, nil
}

// Supported reports whether a bundle exists for the language.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.bundles[lang]
	return ok
}

// Translate looks up key in the language's bundle, falling back to the
// default language and finally to the key itself.
func (t *Translator) Translate(lang, key string) string {
	if table, ok := t.bundles[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := t.bundles[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// FormatDateTime renders a timestamp the way the site displays it:
// long-form date plus 24h clock, e.g. "2 de enero de 2006, 15:04" in
// Spanish or "January 2, 2006, 15:04" in English.
func (t *Translator) FormatDateTime(lang string, ts time.Time) string {
	month := t.Translate(lang, fmt.Sprintf("month.%d", int(ts.Month())))

	if lang == "en" {
		return fmt.Sprintf("%s %d, %d, %02d:%02d", month, ts.Day(), ts.Year(), ts.Hour(), ts.Minute())
	}
	return fmt.Sprintf("%d de %s de %d, %02d:%02d", ts.Day(), month, ts.Year(), ts.Hour(), ts.Minute())
}
