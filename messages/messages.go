// Package messages resolves the localized template strings an "update
// available" prompt renders: a title, a body, a prompt line and three button
// labels. Lookups are an exact match of the catalog's language code against
// the built-in tables; placeholder tokens such as {{appName}} are returned
// verbatim for the caller to substitute.
package messages

import "fmt"

// ID identifies one of the six messages an update prompt renders.
type ID uint8

const (
	Title ID = iota
	Body
	Prompt
	ButtonIgnore
	ButtonLater
	ButtonUpdate
)

var idNames = [...]string{
	Title:        "title",
	Body:         "body",
	Prompt:       "prompt",
	ButtonIgnore: "buttonTitleIgnore",
	ButtonLater:  "buttonTitleLater",
	ButtonUpdate: "buttonTitleUpdate",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return fmt.Sprintf("messages.ID(%d)", uint8(id))
}

// Resolver maps a language code to the template string for one identifier.
// The bool reports whether the language has an entry.
type Resolver func(languageCode string) (string, bool)

// Catalog resolves update-prompt messages for a single language code. It is
// immutable after construction and safe for concurrent use; build a new
// Catalog to switch languages.
type Catalog struct {
	languageCode string
	overrides    [len(idNames)]Resolver
}

// Option customizes a Catalog at construction time.
type Option func(*Catalog)

// WithTitle replaces the resolver for the dialog title.
func WithTitle(r Resolver) Option { return withResolver(Title, r) }

// WithBody replaces the resolver for the body template.
func WithBody(r Resolver) Option { return withResolver(Body, r) }

// WithPrompt replaces the resolver for the prompt line.
func WithPrompt(r Resolver) Option { return withResolver(Prompt, r) }

// WithButtonIgnore replaces the resolver for the ignore button label.
func WithButtonIgnore(r Resolver) Option { return withResolver(ButtonIgnore, r) }

// WithButtonLater replaces the resolver for the later button label.
func WithButtonLater(r Resolver) Option { return withResolver(ButtonLater, r) }

// WithButtonUpdate replaces the resolver for the update button label.
func WithButtonUpdate(r Resolver) Option { return withResolver(ButtonUpdate, r) }

func withResolver(id ID, r Resolver) Option {
	return func(c *Catalog) { c.overrides[id] = r }
}

// New builds a catalog bound to languageCode. The code is used verbatim as a
// lookup key; use locale.Detect to derive one from the host environment.
// Options replace individual resolvers, leaving the other identifiers on the
// built-in tables.
func New(languageCode string, opts ...Option) *Catalog {
	c := &Catalog{languageCode: languageCode}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LanguageCode returns the code the catalog was bound to.
func (c *Catalog) LanguageCode() string { return c.languageCode }

// Message resolves one identifier for the catalog's language code. The bool
// is false when the language has no entry for that identifier (or the
// identifier is unknown); callers choose their own fallback.
func (c *Catalog) Message(id ID) (string, bool) {
	switch id {
	case Title:
		return c.Title()
	case Body:
		return c.Body()
	case Prompt:
		return c.Prompt()
	case ButtonIgnore:
		return c.ButtonIgnore()
	case ButtonLater:
		return c.ButtonLater()
	case ButtonUpdate:
		return c.ButtonUpdate()
	default:
		return "", false
	}
}

// Title resolves the dialog title.
func (c *Catalog) Title() (string, bool) { return c.resolve(Title) }

// Body resolves the body template. The string keeps the {{appName}},
// {{currentAppStoreVersion}} and {{currentInstalledVersion}} tokens intact.
func (c *Catalog) Body() (string, bool) { return c.resolve(Body) }

// Prompt resolves the prompt line.
func (c *Catalog) Prompt() (string, bool) { return c.resolve(Prompt) }

// ButtonIgnore resolves the ignore button label.
func (c *Catalog) ButtonIgnore() (string, bool) { return c.resolve(ButtonIgnore) }

// ButtonLater resolves the later button label.
func (c *Catalog) ButtonLater() (string, bool) { return c.resolve(ButtonLater) }

// ButtonUpdate resolves the update button label.
func (c *Catalog) ButtonUpdate() (string, bool) { return c.resolve(ButtonUpdate) }

func (c *Catalog) resolve(id ID) (string, bool) {
	if r := c.overrides[id]; r != nil {
		return r(c.languageCode)
	}
	return lookup(c.languageCode, id)
}
