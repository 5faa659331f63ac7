package messages_test

import (
	"context"
	"fmt"
	"testing"

	"upgradeprompt/locale"
	"upgradeprompt/messages"
)

func TestExplicitLanguageIgnoresHostLocale(t *testing.T) {
	t.Setenv("LC_ALL", "pl_PL.UTF-8")
	t.Setenv("LANG", "pl_PL.UTF-8")

	got, ok := messages.New("fr").Title()
	if !ok || got != "Mettre à jour l'application?" {
		t.Errorf("fr title = (%q, %v), want the French title", got, ok)
	}
}

func TestDetectedLanguageResolvesCatalog(t *testing.T) {
	t.Setenv("LC_ALL", "es_ES.UTF-8")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	c := messages.New(locale.Detect(locale.Environment()))
	if got, ok := c.ButtonLater(); !ok || got != "MÁS TARDE" {
		t.Errorf("detected ButtonLater = (%q, %v), want MÁS TARDE", got, ok)
	}
}

func Example() {
	ctx := locale.WithLanguage(context.Background(), "fr")
	catalog := messages.New(locale.Detect(locale.Context(ctx), locale.Environment()))

	title, _ := catalog.Title()
	fmt.Println(title)
	// Output: Mettre à jour l'application?
}
