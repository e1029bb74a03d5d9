package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	PublicCode    string
	GuestName     string
	RoomNumber    string
	RoomType      string
	CheckIn       string
	CheckOut      string
	Guests        uint
	TotalAmount   float64
	PaymentMethod string
	DetailLink    string
}

// InvoiceItemRow is one line on the invoice.
type InvoiceItemRow struct {
	Name  string
	Kind  string
	Price float64
}

// InvoiceEmailData carries everything the invoice template needs so the
// mail layer never touches database models.
type InvoiceEmailData struct {
	PublicCode    string
	GuestName     string
	GuestEmail    string
	RoomNumber    string
	RoomType      string
	CheckIn       string
	CheckOut      string
	Nights        int
	PricePerNight float64
	RoomTotal     float64
	Items         []InvoiceItemRow
	Subtotal      float64
	Tax           float64
	Discount      float64
	Total         float64
	PaymentMethod string
	PaidAt        string
}

func smtpSettings() (host string, port int, username, password, from string) {
	host = os.Getenv("SMTP_HOST")
	port, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	username = os.Getenv("SMTP_USERNAME")
	password = os.Getenv("SMTP_PASSWORD")
	from = os.Getenv("SMTP_FROM")
	return
}

// SendBookingConfirmationEmail sends the confirmation mail with an embedded
// QR of the booking code. Runs async so the request is not delayed.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
		if err != nil {
			log.Printf("failed to load confirmation template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render confirmation template: %v", err)
			return
		}

		host, port, username, password, from := smtpSettings()

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed #"+data.PublicCode)
		m.SetBody("text/html", body.String())

		// QR of the public code, referenced as cid:qr.png in the template.
		qrBytes, err := GenerateQRCode(data.PublicCode, 256)
		if err == nil {
			tmpFile, err := os.CreateTemp("", "booking-qr-*.png")
			if err == nil {
				defer os.Remove(tmpFile.Name())
				if _, err := tmpFile.Write(qrBytes); err == nil {
					tmpFile.Close()
					m.Embed(tmpFile.Name(), gomail.Rename("qr.png"))
				}
			}
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}

// SendInvoiceEmail sends the final invoice with the rendered document
// attached. Synchronous: the invoice worker handles retry/backoff.
func SendInvoiceEmail(to string, data InvoiceEmailData) error {
	invoiceHTML, err := RenderInvoiceHTML(data)
	if err != nil {
		return err
	}

	host, port, username, password, from := smtpSettings()

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Invoice for stay #"+data.PublicCode)
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for staying with us. Your invoice for booking <b>%s</b> is attached.</p>",
		data.GuestName, data.PublicCode))

	fileName := "invoice-" + slug.Make(data.PublicCode) + ".html"
	m.Attach(fileName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write([]byte(invoiceHTML))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"text/html; charset=UTF-8"}}),
	)

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

// SendPasswordResetEmail sends the plain-text reset mail.
func SendPasswordResetEmail(to, resetLink string) error {
	host, port, username, password, from := smtpSettings()

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Password reset request"
	e.Text = []byte("You requested a password reset.\n\nOpen the link below to choose a new password. The link expires in 1 hour.\n\n" + resetLink + "\n\nIf you did not request this, you can ignore this email.")

	addr := fmt.Sprintf("%s:%d", host, port)
	return e.Send(addr, smtp.PlainAuth("", username, password, host))
}
