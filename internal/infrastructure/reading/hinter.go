// Package reading produces katakana readings for Japanese text.
package reading

import (
	"fmt"
	"strings"
	"sync"

	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Hinter tokenizes text with kagome and joins the token readings.
// The dictionary is loaded on first use.
type Hinter struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

func NewHinter() *Hinter {
	return &Hinter{}
}

func (h *Hinter) tokenizer() (*tokenizer.Tokenizer, error) {
	h.once.Do(func() {
		h.tok, h.err = tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
		if h.err != nil {
			h.err = fmt.Errorf("failed to initialize kagome tokenizer: %w", h.err)
		}
	})
	return h.tok, h.err
}

// Reading returns the katakana reading of text. Tokens without a dictionary
// reading (latin words, symbols) are kept as written.
func (h *Hinter) Reading(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	tok, err := h.tokenizer()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, t := range tok.Tokenize(text) {
		if r, ok := t.Reading(); ok && r != "*" && r != "" {
			b.WriteString(r)
			continue
		}
		b.WriteString(t.Surface)
	}
	return b.String(), nil
}
