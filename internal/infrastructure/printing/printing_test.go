package printing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFormatter(t *testing.T) {
	en := NewNumberFormatter("en")
	assert.Equal(t, "1,234.50", en.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", en.Money(decimal.Zero))
	assert.Equal(t, "12.125", en.Quantity(decimal.RequireFromString("12.125")))

	ar := NewNumberFormatter("ar")
	assert.NotEqual(t, en.Money(decimal.NewFromInt(1500)), ar.Money(decimal.NewFromInt(1500)))

	// unknown locales fall back to English
	assert.Equal(t, "7.00", NewNumberFormatter("not a locale!").Money(decimal.NewFromInt(7)))
}

func sampleInvoice() InvoiceView {
	w := decimal.RequireFromString("10.5")
	return InvoiceView{
		Number:    "B-17",
		Type:      "buy",
		Date:      time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Warehouse: "North store",
		Farm:      "Kdirani 1",
		Batch:     "Spring <batch>",
		Items: []InvoiceLine{{
			Material: "Corn",
			Unit:     "kg",
			Quantity: decimal.NewFromInt(1000),
			Weight:   &w,
			Price:    decimal.RequireFromString("0.35"),
			Value:    decimal.NewFromInt(350),
		}},
		Expenses:    []ExpenseLine{{Type: "Transport", Amount: decimal.NewFromInt(25)}},
		ItemsTotal:  decimal.NewFromInt(350),
		ExpensesSum: decimal.NewFromInt(25),
		Total:       decimal.NewFromInt(375),
	}
}

func TestRenderInvoiceHTML_English(t *testing.T) {
	out, err := RenderInvoiceHTML(sampleInvoice(), "en")
	require.NoError(t, err)

	assert.Contains(t, out, `dir="ltr"`)
	assert.Contains(t, out, "Invoice Purchase")
	assert.Contains(t, out, "B-17")
	assert.Contains(t, out, "2024-05-02")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "375.00")
	assert.Contains(t, out, "Transport")
	// names are escaped
	assert.Contains(t, out, "Spring &lt;batch&gt;")
}

func TestRenderInvoiceHTML_Arabic(t *testing.T) {
	v := sampleInvoice()
	v.Type = "sell"
	v.Expenses = nil
	out, err := RenderInvoiceHTML(v, "ar")
	require.NoError(t, err)

	assert.Contains(t, out, `dir="rtl"`)
	assert.Contains(t, out, "مبيع")
	assert.NotContains(t, out, "المصاريف")
}

func TestBuildPrintParams(t *testing.T) {
	p := buildPrintParams(&RenderRequest{PaperSize: PaperSizeA4})
	assert.InDelta(t, 210/25.4, p.paperWidth, 0.001)
	assert.InDelta(t, 297/25.4, p.paperHeight, 0.001)
	assert.InDelta(t, 10/25.4, p.margin, 0.001)

	p = buildPrintParams(&RenderRequest{PaperSize: PaperSizeA5, MarginMM: 5, Landscape: true})
	assert.InDelta(t, 148/25.4, p.paperWidth, 0.001)
	assert.True(t, p.landscape)
}

func TestCompleteHTML(t *testing.T) {
	full := "<!DOCTYPE html><html><body>x</body></html>"
	assert.Equal(t, full, completeHTML(&RenderRequest{HTML: full}))

	wrapped := completeHTML(&RenderRequest{HTML: "<p>x</p>", Title: "A & B"})
	assert.True(t, strings.HasPrefix(wrapped, "<!DOCTYPE html>"))
	assert.Contains(t, wrapped, "<title>A &amp; B</title>")
}

func TestChromedpRenderer_RejectsEmptyHTML(t *testing.T) {
	r := NewChromedpRenderer(ChromedpConfig{})
	defer r.Close()

	_, err := r.Render(context.Background(), &RenderRequest{HTML: "  "})
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrCodeInvalidHTML, re.Code)
}
