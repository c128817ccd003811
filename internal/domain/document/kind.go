// Package document holds the pieces shared by every invoice-like record:
// its kind, expense lines, and the derived total.
package document

// Kind identifies a family of records that can carry expenses or attachments.
type Kind string

const (
	KindInvoice             Kind = "invoice"
	KindManufacturing       Kind = "manufacturing"
	KindMedicineConsumption Kind = "medicine_consumption"
	KindDailyReport         Kind = "daily_report"
)

// IsValid reports whether k is a known kind
func (k Kind) IsValid() bool {
	switch k {
	case KindInvoice, KindManufacturing, KindMedicineConsumption, KindDailyReport:
		return true
	default:
		return false
	}
}

// HasTotal reports whether records of this kind carry a derived total_value
func (k Kind) HasTotal() bool {
	switch k {
	case KindInvoice, KindManufacturing, KindMedicineConsumption:
		return true
	default:
		return false
	}
}

// Pages returns the page paths whose cached output lists records of this kind.
func (k Kind) Pages() []string {
	switch k {
	case KindInvoice:
		return []string{"/invoices"}
	case KindManufacturing:
		return []string{"/manufacturing"}
	case KindMedicineConsumption:
		return []string{"/medicine-consumption"}
	case KindDailyReport:
		return []string{"/daily-reports"}
	default:
		return nil
	}
}
