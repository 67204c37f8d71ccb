package internal

import (
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// MessageUntitled is used for entries whose destination has no title.
const MessageUntitled = "untitled"

// Translator resolves i18n message ids for one preferred language,
// falling back to English.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewTranslator loads the embedded message files. An unparseable language
// falls back to English.
func NewTranslator(lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		GetInternalLogger().Warn("Invalid language; using English", "language", lang, "error", err)
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", f.Name())); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// AddMessages parses an additional message file. The file name carries the
// language, e.g. "active.en.toml".
func (t *Translator) AddMessages(data []byte, filename string) error {
	if _, err := t.bundle.ParseMessageFileBytes(data, filename); err != nil {
		return fmt.Errorf("parse messages %s: %w", filename, err)
	}
	return nil
}

// Language returns the preferred language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Translate returns the localized message, or the id itself when no
// translation exists.
func (t *Translator) Translate(messageID string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		// A message found only in the default language comes back with
		// a not-found error for the preferred one.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		return messageID
	}
	return msg
}
