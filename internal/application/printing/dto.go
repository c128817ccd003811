package printing

// PrintInvoiceRequest selects how an invoice is printed
type PrintInvoiceRequest struct {
	Locale    string `form:"locale" binding:"omitempty,oneof=ar en"`
	PaperSize string `form:"paper" binding:"omitempty,oneof=A4 A5"`
}

// PDFDocument is a rendered PDF ready to be sent to the client
type PDFDocument struct {
	FileName string
	Data     []byte
}
