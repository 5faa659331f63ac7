package messages

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed active.*.toml
var localeFS embed.FS

// messageSet holds the templates for one language, one field per identifier.
type messageSet struct {
	Title        string `toml:"title"`
	Body         string `toml:"body"`
	Prompt       string `toml:"prompt"`
	ButtonIgnore string `toml:"buttonTitleIgnore"`
	ButtonLater  string `toml:"buttonTitleLater"`
	ButtonUpdate string `toml:"buttonTitleUpdate"`
}

var tables = mustLoadTables()

// mustLoadTables parses the embedded active.*.toml files into per-language
// message sets. The data is compiled in, so a parse failure is a build defect
// and panics at init.
func mustLoadTables() map[string]messageSet {
	entries, err := localeFS.ReadDir(".")
	if err != nil {
		panic(fmt.Sprintf("messages: read embedded locales: %v", err))
	}

	sets := make(map[string]messageSet, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		data, err := localeFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("messages: read %s: %v", name, err))
		}
		var set messageSet
		if err := toml.Unmarshal(data, &set); err != nil {
			panic(fmt.Sprintf("messages: parse %s: %v", name, err))
		}
		lang := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".toml")
		sets[lang] = set
	}

	if len(sets) == 0 {
		panic("messages: no embedded locale files")
	}
	return sets
}

// Supported returns the language codes carried by the built-in tables, sorted.
func Supported() []string {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// lookup is the default resolution shared by all identifiers: an exact match
// of the language code against the built-in tables. Each identifier's support
// set is independent, so a language missing one entry still resolves the rest.
func lookup(languageCode string, id ID) (string, bool) {
	set, ok := tables[languageCode]
	if !ok {
		return "", false
	}
	msg := set.message(id)
	if msg == "" {
		return "", false
	}
	return msg, true
}

func (s messageSet) message(id ID) string {
	switch id {
	case Title:
		return s.Title
	case Body:
		return s.Body
	case Prompt:
		return s.Prompt
	case ButtonIgnore:
		return s.ButtonIgnore
	case ButtonLater:
		return s.ButtonLater
	case ButtonUpdate:
		return s.ButtonUpdate
	default:
		return ""
	}
}
