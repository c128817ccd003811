package middleware

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLine struct {
	Quantity decimal.Decimal `json:"quantity" binding:"decimal_gte0"`
}

type testInvoice struct {
	InvoiceType string     `json:"invoice_type" binding:"required,invoice_type"`
	Date        string     `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	Notes       string     `json:"notes" binding:"max=5"`
	Items       []testLine `json:"items" binding:"dive"`
}

func newTestValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()
}

func TestCustomValidations(t *testing.T) {
	v := newTestValidate()

	valid := testInvoice{
		InvoiceType: "sell",
		Date:        "2024-03-01",
		Items:       []testLine{{Quantity: decimal.NewFromInt(3)}, {Quantity: decimal.Zero}},
	}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*testInvoice)
		path   string
		msg    string
	}{
		{"unknown type", func(i *testInvoice) { i.InvoiceType = "gift" }, "invoice_type", "Must be buy or sell"},
		{"bad date", func(i *testInvoice) { i.Date = "01/03/2024" }, "invoice_date", "Must be a date"},
		{"long notes", func(i *testInvoice) { i.Notes = "too long" }, "notes", "Must be at most 5 characters"},
		{"negative quantity", func(i *testInvoice) {
			i.Items = []testLine{{Quantity: decimal.NewFromFloat(-0.5)}}
		}, "items[0].quantity", "Must be zero or greater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := v.Struct(in)
			require.Error(t, err)

			msg := ValidationMessage(err)
			assert.Contains(t, msg, tt.path+": ")
			assert.Contains(t, msg, tt.msg)
		})
	}
}

func TestValidationMessage_NonValidatorError(t *testing.T) {
	msg := ValidationMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "invalid request: unexpected EOF", msg)
}
