package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InvoiceView is the printable form of an enriched invoice
type InvoiceView struct {
	Number      string
	Type        string // buy or sell
	Date        time.Time
	Time        string
	Warehouse   string
	Farm        string
	Batch       string
	Checked     bool
	Notes       string
	Items       []InvoiceLine
	Expenses    []ExpenseLine
	ItemsTotal  decimal.Decimal
	ExpensesSum decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceLine is one printed item row
type InvoiceLine struct {
	Material string
	Unit     string
	Quantity decimal.Decimal
	Weight   *decimal.Decimal
	Price    decimal.Decimal
	Value    decimal.Decimal
}

// ExpenseLine is one printed expense row
type ExpenseLine struct {
	Type    string
	Account string
	Amount  decimal.Decimal
}

type labels struct {
	Dir           string
	Title         string
	Buy           string
	Sell          string
	Number        string
	Date          string
	Warehouse     string
	Farm          string
	Batch         string
	Material      string
	Unit          string
	Quantity      string
	Weight        string
	Price         string
	Value         string
	Expenses      string
	ExpenseType   string
	Account       string
	Amount        string
	ItemsTotal    string
	ExpensesTotal string
	Total         string
	Notes         string
	Checked       string
}

var arabicLabels = labels{
	Dir: "rtl", Title: "فاتورة", Buy: "شراء", Sell: "مبيع", Number: "رقم الفاتورة", Date: "التاريخ",
	Warehouse: "المستودع", Farm: "المزرعة", Batch: "الفوج",
	Material: "المادة", Unit: "الوحدة", Quantity: "الكمية", Weight: "الوزن", Price: "السعر", Value: "القيمة",
	Expenses: "المصاريف", ExpenseType: "نوع المصروف", Account: "الحساب", Amount: "المبلغ",
	ItemsTotal: "مجموع المواد", ExpensesTotal: "مجموع المصاريف", Total: "الإجمالي", Notes: "ملاحظات", Checked: "مدققة",
}

var englishLabels = labels{
	Dir: "ltr", Title: "Invoice", Buy: "Purchase", Sell: "Sale", Number: "Invoice no.", Date: "Date",
	Warehouse: "Warehouse", Farm: "Farm", Batch: "Batch",
	Material: "Material", Unit: "Unit", Quantity: "Quantity", Weight: "Weight", Price: "Price", Value: "Value",
	Expenses: "Expenses", ExpenseType: "Expense type", Account: "Account", Amount: "Amount",
	ItemsTotal: "Items total", ExpensesTotal: "Expenses total", Total: "Total", Notes: "Notes", Checked: "Checked",
}

// NumberFormatter formats quantities and money for one locale
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter creates a formatter for a BCP 47 locale such as "ar" or "en"
func NewNumberFormatter(locale string) NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return NumberFormatter{printer: message.NewPrinter(tag)}
}

// Money formats d with grouping and two decimals
func (f NumberFormatter) Money(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Quantity formats d with grouping and up to three decimals
func (f NumberFormatter) Quantity(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html dir="{{.L.Dir}}"><head><meta charset="UTF-8"><title>{{.L.Title}} {{.V.Number}}</title>
<style>
body{font-family:"Noto Naskh Arabic","DejaVu Sans",sans-serif;font-size:12px;color:#222}
h1{font-size:18px;margin:0 0 8px}
table{width:100%;border-collapse:collapse;margin:8px 0}
th,td{border:1px solid #999;padding:4px 6px;text-align:start}
th{background:#eee}
.totals td{font-weight:bold}
.meta td{border:none;padding:2px 6px}
</style></head><body>
<h1>{{.L.Title}} {{if eq .V.Type "sell"}}{{.L.Sell}}{{else}}{{.L.Buy}}{{end}}{{if .V.Checked}} ({{.L.Checked}}){{end}}</h1>
<table class="meta">
<tr><td>{{.L.Number}}: {{.V.Number}}</td><td>{{.L.Date}}: {{.Date}}{{if .V.Time}} {{.V.Time}}{{end}}</td></tr>
<tr><td>{{.L.Farm}}: {{.V.Farm}}</td><td>{{.L.Warehouse}}: {{.V.Warehouse}}</td></tr>
{{if .V.Batch}}<tr><td colspan="2">{{.L.Batch}}: {{.V.Batch}}</td></tr>{{end}}
</table>
<table>
<tr><th>#</th><th>{{.L.Material}}</th><th>{{.L.Unit}}</th><th>{{.L.Quantity}}</th><th>{{.L.Weight}}</th><th>{{.L.Price}}</th><th>{{.L.Value}}</th></tr>
{{range $i, $it := .Items}}<tr><td>{{$it.N}}</td><td>{{$it.Material}}</td><td>{{$it.Unit}}</td><td>{{$it.Quantity}}</td><td>{{$it.Weight}}</td><td>{{$it.Price}}</td><td>{{$it.Value}}</td></tr>
{{end}}<tr class="totals"><td colspan="6">{{.L.ItemsTotal}}</td><td>{{.ItemsTotal}}</td></tr>
</table>
{{if .Expenses}}<h2>{{.L.Expenses}}</h2>
<table>
<tr><th>{{.L.ExpenseType}}</th><th>{{.L.Account}}</th><th>{{.L.Amount}}</th></tr>
{{range .Expenses}}<tr><td>{{.Type}}</td><td>{{.Account}}</td><td>{{.Amount}}</td></tr>
{{end}}<tr class="totals"><td colspan="2">{{.L.ExpensesTotal}}</td><td>{{.ExpensesSum}}</td></tr>
</table>{{end}}
<table><tr class="totals"><td>{{.L.Total}}</td><td>{{.Total}}</td></tr></table>
{{if .V.Notes}}<p>{{.L.Notes}}: {{.V.Notes}}</p>{{end}}
</body></html>`))

type printedItem struct {
	N        int
	Material string
	Unit     string
	Quantity string
	Weight   string
	Price    string
	Value    string
}

type printedExpense struct {
	Type    string
	Account string
	Amount  string
}

// RenderInvoiceHTML lays out an invoice for locale ("ar" prints right to left)
func RenderInvoiceHTML(v InvoiceView, locale string) (string, error) {
	f := NewNumberFormatter(locale)
	l := englishLabels
	if tag, err := language.Parse(locale); err == nil {
		if base, _ := tag.Base(); base.String() == "ar" {
			l = arabicLabels
		}
	}

	items := make([]printedItem, len(v.Items))
	for i, it := range v.Items {
		weight := ""
		if it.Weight != nil {
			weight = f.Quantity(*it.Weight)
		}
		items[i] = printedItem{
			N:        i + 1,
			Material: it.Material,
			Unit:     it.Unit,
			Quantity: f.Quantity(it.Quantity),
			Weight:   weight,
			Price:    f.Money(it.Price),
			Value:    f.Money(it.Value),
		}
	}
	expenses := make([]printedExpense, len(v.Expenses))
	for i, e := range v.Expenses {
		expenses[i] = printedExpense{Type: e.Type, Account: e.Account, Amount: f.Money(e.Amount)}
	}

	data := struct {
		L           labels
		V           InvoiceView
		Date        string
		Items       []printedItem
		Expenses    []printedExpense
		ItemsTotal  string
		ExpensesSum string
		Total       string
	}{
		L:           l,
		V:           v,
		Date:        v.Date.Format("2006-01-02"),
		Items:       items,
		Expenses:    expenses,
		ItemsTotal:  f.Money(v.ItemsTotal),
		ExpensesSum: f.Money(v.ExpensesSum),
		Total:       f.Money(v.Total),
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}
	return buf.String(), nil
}
