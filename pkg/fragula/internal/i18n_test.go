package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslatorEmbeddedMessages(t *testing.T) {
	en, err := NewTranslator("en")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", en.Translate(MessageUntitled))

	de, err := NewTranslator("de")
	require.NoError(t, err)
	assert.Equal(t, language.German, de.Language())
	assert.Equal(t, "Ohne Titel", de.Translate(MessageUntitled))
}

func TestTranslatorInvalidLanguageFallsBack(t *testing.T) {
	tr, err := NewTranslator("not a language!")
	require.NoError(t, err)
	assert.Equal(t, language.English, tr.Language())
	assert.Equal(t, "Untitled", tr.Translate(MessageUntitled))
}

func TestTranslatorMissingMessage(t *testing.T) {
	tr, err := NewTranslator("de")
	require.NoError(t, err)
	assert.Equal(t, "no_such_message", tr.Translate("no_such_message"))
}

func TestTranslatorAddMessages(t *testing.T) {
	tr, err := NewTranslator("de")
	require.NoError(t, err)

	require.NoError(t, tr.AddMessages([]byte(`inbox = "Inbox"`), "active.en.toml"))
	require.NoError(t, tr.AddMessages([]byte(`inbox = "Posteingang"`), "active.de.toml"))
	require.NoError(t, tr.AddMessages([]byte(`only_en = "Only English"`), "extra.en.toml"))

	assert.Equal(t, "Posteingang", tr.Translate("inbox"))
	assert.Equal(t, "Only English", tr.Translate("only_en"), "falls back to English")

	assert.Error(t, tr.AddMessages([]byte(`inbox = `), "broken.en.toml"))
}

func TestTranslatorFallsBackToEnglish(t *testing.T) {
	tr, err := NewTranslator("de")
	require.NoError(t, err)
	require.NoError(t, tr.AddMessages([]byte(`chat_title = "Conversation"`), "active.en.toml"))

	assert.Equal(t, "Conversation", tr.Translate("chat_title"))
}
