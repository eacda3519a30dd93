package order

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/cart"
	"storefront-backend/pkg/whatsapp"
)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	require.NoError(t, c.AddItem("1", cart.UnitPiece, decimal.RequireFromString("0.150"), "ماء", "حبة", 2))
	require.NoError(t, c.AddItem("1", cart.UnitCarton, decimal.RequireFromString("1.500"), "ماء", "كرتون", 1))
	return c
}

func TestBuildSummary_EmptyCart(t *testing.T) {
	_, err := BuildSummary(cart.New())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = BuildSummary(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildSummary_Totals(t *testing.T) {
	summary, err := BuildSummary(newCart(t))
	require.NoError(t, err)

	require.Len(t, summary.Lines, 2)
	assert.Equal(t, "0.300", FormatAmount(summary.Lines[0].LineTotal))
	assert.Equal(t, "1.500", FormatAmount(summary.Lines[1].LineTotal))
	assert.Equal(t, "1.800", FormatAmount(summary.GrandTotal))
	assert.Equal(t, 3, summary.ItemCount)
}

func TestBuildSummary_PreservesInsertionOrder(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem("b", cart.UnitPiece, decimal.RequireFromString("9"), "B", "حبة", 1))
	require.NoError(t, c.AddItem("a", cart.UnitPiece, decimal.RequireFromString("1"), "A", "حبة", 5))
	require.NoError(t, c.AddItem("c", cart.UnitPiece, decimal.RequireFromString("3"), "C", "حبة", 2))

	summary, err := BuildSummary(c)
	require.NoError(t, err)
	var ids []string
	for _, line := range summary.Lines {
		ids = append(ids, line.Item.ProductID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestBuildSummary_DoesNotMutateCart(t *testing.T) {
	c := newCart(t)
	before := c.Items()

	_, err := BuildSummary(c)
	require.NoError(t, err)
	assert.Equal(t, before, c.Items())
}

func TestBuildSummary_SumsBeforeRounding(t *testing.T) {
	c := cart.New()
	// Each line is 0.0005 and would round up to 0.001 on its own.
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, c.AddItem(id, cart.UnitPiece, decimal.RequireFromString("0.0005"), id, "حبة", 1))
	}

	summary, err := BuildSummary(c)
	require.NoError(t, err)
	assert.Equal(t, "0.001", FormatAmount(summary.Lines[0].LineTotal))
	assert.Equal(t, "0.002", FormatAmount(summary.GrandTotal))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.350", FormatAmount(decimal.RequireFromString("1.35")))
	assert.Equal(t, "0.000", FormatAmount(decimal.Zero))
	assert.Equal(t, "2.346", FormatAmount(decimal.RequireFromString("2.3455")))
	assert.Equal(t, "10.000", FormatAmount(decimal.NewFromInt(10)))
}

func TestRenderMessage(t *testing.T) {
	summary, err := BuildSummary(newCart(t))
	require.NoError(t, err)

	msg, err := NewComposer(nil).RenderMessage(summary, "بقالة أمواج صلالة", "96896755118")
	require.NoError(t, err)

	want := "✨ *السلام عليكم* ✨\n" +
		"تكرما أرجو تجهيز الطلب الآتي 🛒\n\n" +
		"🧾 *تفاصيل الطلب:*\n" +
		"\n🔹 ماء (حبة)\n" +
		"   الكمية: 2\n" +
		"   السعر: 0.150 ر.ع\n" +
		"   المجموع: 0.300 ر.ع\n" +
		"\n🔹 ماء (كرتون)\n" +
		"   الكمية: 1\n" +
		"   السعر: 1.500 ر.ع\n" +
		"   المجموع: 1.500 ر.ع\n" +
		"\n💰 *المجموع الإجمالي: 1.800 ر.ع*" +
		"\n\n🙏 شكراً *بقالة أمواج صلالة* وموعدنا معكم في طلب قادم بإذن الله 💙"
	assert.Equal(t, want, msg.Text)

	assert.True(t, strings.HasPrefix(msg.URL, "https://api.whatsapp.com/send?phone=96896755118&text="))
	text, err := whatsapp.TextFromURL(msg.URL)
	require.NoError(t, err)
	assert.Equal(t, msg.Text, text)
}

func TestRenderMessage_Deterministic(t *testing.T) {
	composer := NewComposer(whatsapp.NewLinkBuilder(""))
	summary, err := BuildSummary(newCart(t))
	require.NoError(t, err)

	first, err := composer.RenderMessage(summary, "Store", "968 1234")
	require.NoError(t, err)
	second, err := composer.RenderMessage(summary, "Store", "968 1234")
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.URL, second.URL)
}

func TestRenderMessage_Errors(t *testing.T) {
	composer := NewComposer(nil)

	_, err := composer.RenderMessage(nil, "Store", "1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = composer.RenderMessage(&Summary{}, "Store", "1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	summary, err := BuildSummary(newCart(t))
	require.NoError(t, err)
	_, err = composer.RenderMessage(summary, "Store", "")
	assert.ErrorIs(t, err, ErrInvalidContactPhone)
}

func TestRenderMessage_PhoneErrorKeepsCause(t *testing.T) {
	summary, err := BuildSummary(newCart(t))
	require.NoError(t, err)

	_, err = NewComposer(nil).RenderMessage(summary, "Store", "phone")
	assert.ErrorIs(t, err, ErrInvalidContactPhone)
	assert.ErrorIs(t, err, whatsapp.ErrInvalidPhone)
}
