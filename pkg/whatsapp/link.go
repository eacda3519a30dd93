// Package whatsapp builds click-to-chat deep links that open the messaging
// app with a destination number and a pre-filled message.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://api.whatsapp.com/send"

var ErrInvalidPhone = errors.New("phone number must contain only digits")

// componentReplacer undoes the escapes url.QueryEscape applies to characters
// that encodeURIComponent leaves alone, and spells spaces as %20.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

type LinkBuilder struct {
	baseURL string
}

func NewLinkBuilder(baseURL string) *LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LinkBuilder{baseURL: strings.TrimRight(baseURL, "?")}
}

// SendURL returns baseURL?phone=<digits>&text=<encoded text>.
func (b *LinkBuilder) SendURL(phone, text string) (string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	return b.baseURL + "?phone=" + digits + "&text=" + EncodeText(text), nil
}

// EncodeText percent-encodes s the way a browser's encodeURIComponent does.
func EncodeText(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// DecodeText reverses EncodeText.
func DecodeText(s string) (string, error) {
	return url.PathUnescape(s)
}

// NormalizePhone strips the formatting characters people type around a
// number ('+', spaces, dashes, dots, parentheses) and returns the digits.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return b.String(), nil
}

// TextFromURL extracts and decodes the text parameter of a link built by
// SendURL.
func TextFromURL(link string) (string, error) {
	_, query, ok := strings.Cut(link, "?")
	if !ok {
		return "", errors.New("link has no query")
	}
	for _, pair := range strings.Split(query, "&") {
		if encoded, found := strings.CutPrefix(pair, "text="); found {
			return DecodeText(encoded)
		}
	}
	return "", errors.New("link has no text parameter")
}
