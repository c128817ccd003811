// Package printing renders invoices to PDF: an html/template page with
// locale-aware number formatting, printed by headless Chrome over the
// DevTools protocol.
package printing
