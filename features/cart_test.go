package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/order"
	"storefront-backend/pkg/whatsapp"
)

var errorKinds = map[string]error{
	"InvalidQuantity": cart.ErrInvalidQuantity,
	"InvalidPrice":    cart.ErrInvalidPrice,
	"UnknownUnit":     cart.ErrUnknownUnit,
	"EmptyCart":       order.ErrEmptyCart,
}

type cartTestContext struct {
	cart       *cart.Cart
	composer   *order.Composer
	summary    *order.Summary
	message    *order.Message
	store      string
	phone      string
	addErr     error
	summaryErr error
}

func (c *cartTestContext) reset() {
	c.cart = nil
	c.composer = order.NewComposer(whatsapp.NewLinkBuilder(whatsapp.DefaultBaseURL))
	c.summary = nil
	c.message = nil
	c.addErr = nil
	c.summaryErr = nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = cart.New()
	return nil
}

func (c *cartTestContext) iAddOfProductPriced(quantity int, unit, productID, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.addErr = c.cart.AddItem(productID, cart.Unit(unit), p, "Product "+productID, unit, quantity)
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if c.addErr != nil {
		return fmt.Errorf("unexpected add error: %v", c.addErr)
	}
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d line items, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) theTotalItemCountIs(n int) error {
	if got := c.cart.TotalItemCount(); got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theAddFailsWith(kind string) error {
	return expectKind(c.addErr, kind)
}

func (c *cartTestContext) iBuildTheOrderSummary() error {
	c.summary, c.summaryErr = order.BuildSummary(c.cart)
	return nil
}

func (c *cartTestContext) theSummaryFailsWith(kind string) error {
	if c.summary != nil {
		return errors.New("expected no summary")
	}
	return expectKind(c.summaryErr, kind)
}

func (c *cartTestContext) theLineTotalsAre(list string) error {
	if c.summaryErr != nil {
		return c.summaryErr
	}
	var got []string
	for _, line := range c.summary.Lines {
		got = append(got, order.FormatAmount(line.LineTotal))
	}
	if strings.Join(got, ", ") != list {
		return fmt.Errorf("expected line totals %q, got %q", list, strings.Join(got, ", "))
	}
	return nil
}

func (c *cartTestContext) theGrandTotalIs(total string) error {
	if c.summaryErr != nil {
		return c.summaryErr
	}
	if got := order.FormatAmount(c.summary.GrandTotal); got != total {
		return fmt.Errorf("expected grand total %s, got %s", total, got)
	}
	return nil
}

func (c *cartTestContext) iRenderTheMessageForStoreAndPhone(store, phone string) error {
	c.store, c.phone = store, phone
	var err error
	c.message, err = c.composer.RenderMessage(c.summary, store, phone)
	return err
}

func (c *cartTestContext) renderingAgainGivesTheSameMessage() error {
	again, err := c.composer.RenderMessage(c.summary, c.store, c.phone)
	if err != nil {
		return err
	}
	if again.Text != c.message.Text || again.URL != c.message.URL {
		return errors.New("rendered message differs between calls")
	}
	return nil
}

func (c *cartTestContext) decodingTheDeepLinkGivesBackTheMessage() error {
	text, err := whatsapp.TextFromURL(c.message.URL)
	if err != nil {
		return err
	}
	if text != c.message.Text {
		return fmt.Errorf("decoded text differs from message:\n%s\n---\n%s", text, c.message.Text)
	}
	return nil
}

func (c *cartTestContext) theDeepLinkGoesToPhone(phone string) error {
	prefix := whatsapp.DefaultBaseURL + "?phone=" + phone + "&"
	if !strings.HasPrefix(c.message.URL, prefix) {
		return fmt.Errorf("expected link to start with %q, got %q", prefix, c.message.URL)
	}
	return nil
}

func expectKind(err error, kind string) error {
	want, ok := errorKinds[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if !errors.Is(err, want) {
		return fmt.Errorf("expected %s, got %v", kind, err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^I add (-?\d+) "([^"]*)" of product "([^"]*)" priced (-?[\d.]+)$`, tc.iAddOfProductPriced)
	ctx.Step(`^the cart has (\d+) line items$`, tc.theCartHasLineItems)
	ctx.Step(`^the total item count is (\d+)$`, tc.theTotalItemCountIs)
	ctx.Step(`^the add fails with "([^"]*)"$`, tc.theAddFailsWith)
	ctx.Step(`^I build the order summary$`, tc.iBuildTheOrderSummary)
	ctx.Step(`^the summary fails with "([^"]*)"$`, tc.theSummaryFailsWith)
	ctx.Step(`^the line totals are "([^"]*)"$`, tc.theLineTotalsAre)
	ctx.Step(`^the grand total is "([^"]*)"$`, tc.theGrandTotalIs)
	ctx.Step(`^I render the message for store "([^"]*)" and phone "([^"]*)"$`, tc.iRenderTheMessageForStoreAndPhone)
	ctx.Step(`^rendering again gives the same message$`, tc.renderingAgainGivesTheSameMessage)
	ctx.Step(`^decoding the deep link gives back the message$`, tc.decodingTheDeepLinkGivesBackTheMessage)
	ctx.Step(`^the deep link goes to phone "([^"]*)"$`, tc.theDeepLinkGoesToPhone)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "cart",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
