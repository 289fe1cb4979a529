// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/shopspring/decimal"
)

// Service renders order receipts
type Service struct {
	company config.CompanyConfig
	now     func() time.Time
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		company: cfg.Company,
		now:     time.Now,
	}
}

// ReceiptData is passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string
	OrderDate     string
	IssuedAt      string
	Order         *order.Order
	Company       config.CompanyConfig
}

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "₹" + d.StringFixed(2)
	},
	"label": func(v any) string {
		return strings.ToUpper(fmt.Sprint(v))
	},
}).Parse(receiptTemplate))

// RenderHTML renders the receipt markup for an order
func (s *Service) RenderHTML(o *order.Order) ([]byte, error) {
	data := ReceiptData{
		ReceiptNumber: "RCPT-" + o.OrderNumber,
		OrderDate:     o.CreatedAt.Format("January 2, 2006"),
		IssuedAt:      s.now().Format("January 2, 2006 15:04"),
		Order:         o,
		Company:       s.company,
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateReceipt converts the receipt markup into a PDF with wkhtmltopdf
func (s *Service) GenerateReceipt(o *order.Order) ([]byte, error) {
	html, err := s.RenderHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.FooterRight.Set("[page]/[topage]")
	page.FooterFontSize.Set(8)
	page.Encoding.Set("UTF-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}
	return pdfg.Bytes(), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Receipt {{.ReceiptNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #333; margin: 0; padding: 24px; }
  .header { border-bottom: 2px solid #e11d48; padding-bottom: 16px; margin-bottom: 24px; }
  .brand { font-size: 26px; font-weight: bold; color: #e11d48; }
  .muted { color: #777; font-size: 12px; }
  table { width: 100%; border-collapse: collapse; }
  .items th { background: #fdf2f8; text-align: left; padding: 8px; font-size: 13px; }
  .items td { padding: 8px; border-bottom: 1px solid #eee; font-size: 13px; }
  .num { text-align: right; }
  .totals td { padding: 4px 8px; }
  .grand td { font-weight: bold; font-size: 16px; border-top: 2px solid #333; }
  .discreet { margin-top: 24px; font-size: 11px; color: #777; }
</style>
</head>
<body>
<div class="header">
  <div class="brand">{{.Company.Name}}</div>
  <div class="muted">{{.Company.Address}}</div>
  <div class="muted">{{.Company.Phone}} | {{.Company.Email}} | {{.Company.Website}}</div>
  {{if .Company.GSTIN}}<div class="muted">GSTIN: {{.Company.GSTIN}}</div>{{end}}
</div>

<table>
  <tr>
    <td>
      <strong>Ship to</strong><br>
      {{with .Order.ShippingAddress}}
      {{.FullName}}<br>{{.Address}}<br>{{.City}}, {{.State}} {{.Pincode}}<br>{{.Phone}}
      {{end}}
    </td>
    <td class="num">
      <strong>{{.ReceiptNumber}}</strong><br>
      Order: {{.Order.OrderNumber}}<br>
      Placed: {{.OrderDate}}<br>
      Payment: {{label .Order.PaymentMethod}} ({{.Order.PaymentStatus}})<br>
      Status: {{.Order.OrderStatus}}
    </td>
  </tr>
</table>

<table class="items" style="margin-top: 24px">
  <tr><th>Item</th><th class="num">Price</th><th class="num">Qty</th><th class="num">Amount</th></tr>
  {{range .Order.Items}}
  <tr>
    <td>{{.Name}}</td>
    <td class="num">{{money .Price}}</td>
    <td class="num">{{.Quantity}}</td>
    <td class="num">{{money .LineTotal}}</td>
  </tr>
  {{end}}
</table>

<table class="totals" style="margin-top: 16px; width: 40%; margin-left: 60%">
  <tr><td>Subtotal</td><td class="num">{{money .Order.Subtotal}}</td></tr>
  <tr><td>GST</td><td class="num">{{money .Order.Tax}}</td></tr>
  <tr><td>Shipping</td><td class="num">{{if .Order.ShippingCost.IsZero}}FREE{{else}}{{money .Order.ShippingCost}}{{end}}</td></tr>
  <tr class="grand"><td>Total</td><td class="num">{{money .Order.Total}}</td></tr>
</table>

{{if .Order.Notes}}<p><strong>Notes:</strong> {{.Order.Notes}}</p>{{end}}

<p class="discreet">Shipped in plain, unbranded packaging. Issued {{.IssuedAt}}.</p>
</body>
</html>
`
