package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront-backend/pkg/whatsapp"
)

const (
	currencyLabel = "ر.ع"

	messageHeader = "✨ *السلام عليكم* ✨\n" +
		"تكرما أرجو تجهيز الطلب الآتي 🛒\n\n" +
		"🧾 *تفاصيل الطلب:*\n"
)

var ErrInvalidContactPhone = errors.New("invalid contact phone")

// Message is the rendered order text and the deep link carrying it.
type Message struct {
	Text string
	URL  string
}

type Composer struct {
	links *whatsapp.LinkBuilder
}

func NewComposer(links *whatsapp.LinkBuilder) *Composer {
	if links == nil {
		links = whatsapp.NewLinkBuilder(whatsapp.DefaultBaseURL)
	}
	return &Composer{links: links}
}

// RenderMessage formats summary as the order message addressed to
// contactPhone. The output depends only on its arguments.
func (c *Composer) RenderMessage(summary *Summary, storeName, contactPhone string) (*Message, error) {
	if summary == nil || len(summary.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	text := renderText(summary, storeName)
	link, err := c.links.SendURL(contactPhone, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContactPhone, err)
	}
	return &Message{Text: text, URL: link}, nil
}

func renderText(summary *Summary, storeName string) string {
	var b strings.Builder
	b.WriteString(messageHeader)

	for _, line := range summary.Lines {
		item := line.Item
		b.WriteString("\n🔹 " + item.Name + " (" + item.UnitDisplay + ")\n")
		b.WriteString("   الكمية: " + strconv.Itoa(item.Quantity) + "\n")
		b.WriteString("   السعر: " + FormatAmount(item.UnitPrice) + " " + currencyLabel + "\n")
		b.WriteString("   المجموع: " + FormatAmount(line.LineTotal) + " " + currencyLabel + "\n")
	}

	b.WriteString("\n💰 *المجموع الإجمالي: " + FormatAmount(summary.GrandTotal) + " " + currencyLabel + "*")
	b.WriteString("\n\n🙏 شكراً *" + storeName + "* وموعدنا معكم في طلب قادم بإذن الله 💙")
	return b.String()
}
