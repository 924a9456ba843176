package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Xuanwo/go-locale"
	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var translationFS embed.FS

const fallbackLang = "en"

// Translator resolves message keys against the embedded translation tables.
type Translator struct {
	lang   string
	tables map[string]map[string]string
}

// New creates a Translator for the given two-letter language code. An empty
// code falls back to the system locale; an unknown code falls back to English.
func New(lang string) (*Translator, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}

	if lang == "" {
		lang = detectLang()
	}
	if _, ok := tables[lang]; !ok {
		lang = fallbackLang
	}

	return &Translator{lang: lang, tables: tables}, nil
}

// Lang returns the active language code.
func (t *Translator) Lang() string {
	return t.lang
}

// Languages lists the embedded language codes in sorted order.
func (t *Translator) Languages() []string {
	codes := make([]string, 0, len(t.tables))
	for code := range t.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// T resolves key in the active language and formats it with args. Missing
// keys fall back to English, then to the key itself so a typo never hides
// output entirely.
func (t *Translator) T(key string, args ...any) string {
	format, ok := t.tables[t.lang][key]
	if !ok {
		format, ok = t.tables[fallbackLang][key]
	}
	if !ok {
		format = key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func loadTables() (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(translationFS, "translations")
	if err != nil {
		return nil, err
	}

	tables := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		code := strings.TrimSuffix(name, path.Ext(name))

		data, err := translationFS.ReadFile(path.Join("translations", name))
		if err != nil {
			return nil, err
		}

		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("translation table %s: %w", name, err)
		}
		tables[code] = table
	}

	return tables, nil
}

func detectLang() string {
	tag, err := locale.Detect()
	if err != nil {
		return fallbackLang
	}
	base, _ := tag.Base()
	code := base.String()
	if code == "" {
		return fallbackLang
	}
	return code
}
