// Package locale resolves the language code an update prompt should render
// in. Detection consults an ordered list of providers (a rendering context,
// the process environment) and falls back to "en"; it never fails.
package locale

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Default is the language code detection falls back to when no source has one.
const Default = "en"

// Provider reports a preferred language code from one host source. An empty
// string means the source has no preference.
type Provider interface {
	LanguageCode() string
}

// Detect returns the primary language subtag of the first provider with a
// usable value, or Default when none has one. Providers are consulted in
// order, so callers list the most specific source first, e.g.
// Detect(Context(ctx), Environment()).
func Detect(providers ...Provider) string {
	for _, p := range providers {
		if p == nil {
			continue
		}
		if code := Normalize(p.LanguageCode()); code != "" {
			return code
		}
	}
	return Default
}

// Normalize reduces a locale identifier to its primary language subtag
// ("pt-BR" becomes "pt"). Unparseable input normalizes to "".
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

type ctxKey struct{}

// WithLanguage returns a context carrying the language code resolved for a
// rendering surface (an HTTP request, a UI session).
func WithLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ctxKey{}, code)
}

// Context returns a provider reading the language code carried by ctx, if any.
func Context(ctx context.Context) Provider {
	return contextProvider{ctx: ctx}
}

type contextProvider struct {
	ctx context.Context
}

func (p contextProvider) LanguageCode() string {
	if p.ctx == nil {
		return ""
	}
	code, _ := p.ctx.Value(ctxKey{}).(string)
	return code
}

// Environment returns a provider reading the process default locale from
// LC_ALL, LC_MESSAGES and LANG, in POSIX precedence order.
func Environment() Provider {
	return envProvider{}
}

type envProvider struct{}

func (envProvider) LanguageCode() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		return posixTag(value)
	}
	return ""
}

// posixTag converts a POSIX locale name ("pt_BR.UTF-8@latin") into a BCP 47
// candidate ("pt-BR") by dropping the codeset and modifier.
func posixTag(value string) string {
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	return strings.ReplaceAll(value, "_", "-")
}

// Static returns a provider that always reports code. Useful in tests and for
// wiring an explicit preference into a detection chain.
func Static(code string) Provider {
	return staticProvider(code)
}

type staticProvider string

func (p staticProvider) LanguageCode() string { return string(p) }
