package utils

import (
	"bytes"
	"html/template"
)

// RenderInvoiceHTML renders the invoice document that gets attached to
// the invoice email.
func RenderInvoiceHTML(data InvoiceEmailData) (string, error) {
	tmpl, err := template.ParseFiles("templates/invoice.html")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
