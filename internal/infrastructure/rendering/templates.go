package rendering

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/comex/backend/internal/application/document"
	"github.com/comex/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DocumentComposer turns billing document data into printable HTML
// using Go templates with Brazilian formatting conventions.
type DocumentComposer struct {
	invoiceTmpl *template.Template
	receiptTmpl *template.Template
}

// NewDocumentComposer creates a composer with the built-in templates
func NewDocumentComposer() (*DocumentComposer, error) {
	funcMap := template.FuncMap{
		"formatMoney":   formatMoney,
		"formatRate":    formatRate,
		"formatDate":    formatDate,
		"formatDatePtr": formatDatePtr,
		"formatCNPJ":    formatCNPJ,
		"inBRL":         convertToBRL,
		"lineRate":      lineRate,
		"upper":         strings.ToUpper,
	}

	invoiceTmpl, err := template.New("invoice").Funcs(funcMap).Parse(invoiceTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}
	receiptTmpl, err := template.New("receipt").Funcs(funcMap).Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}

	return &DocumentComposer{
		invoiceTmpl: invoiceTmpl,
		receiptTmpl: receiptTmpl,
	}, nil
}

// ComposeInvoice renders the invoice template
func (c *DocumentComposer) ComposeInvoice(data document.InvoiceDocumentData) (string, error) {
	var buf bytes.Buffer
	if err := c.invoiceTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compose invoice %s: %w", data.InvoiceNumber, err)
	}
	return buf.String(), nil
}

// ComposeReceipt renders the receipt template
func (c *DocumentComposer) ComposeReceipt(data document.ReceiptDocumentData) (string, error) {
	var buf bytes.Buffer
	if err := c.receiptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compose receipt %s: %w", data.ReceiptNumber, err)
	}
	return buf.String(), nil
}

// formatMoney formats a decimal in Brazilian convention: 1.234,56
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// formatRate formats an exchange rate with four decimal places
func formatRate(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(4), ".", ",", 1)
}

// formatDate formats a date as DD/MM/YYYY
func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// formatDatePtr formats an optional date, empty when nil
func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// convertToBRL converts a line value to BRL at the invoice's dollar rate.
// BRL values pass through unchanged.
func convertToBRL(amount decimal.Decimal, currency string, dollarRate decimal.Decimal) decimal.Decimal {
	m, err := valueobject.NewMoney(amount, valueobject.Currency(currency))
	if err != nil {
		return amount
	}
	return m.InBRL(dollarRate).Amount()
}

// lineRate is the exchange rate shown on a line: the invoice's dollar
// rate for USD values, 1 for BRL values.
func lineRate(currency string, dollarRate decimal.Decimal) decimal.Decimal {
	if valueobject.Currency(currency) == valueobject.USD {
		return dollarRate
	}
	return decimal.NewFromInt(1)
}

// formatCNPJ applies the standard mask: 00.000.000/0000-00
func formatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s",
		cnpj[0:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:14])
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Fatura {{.InvoiceNumber}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .meta { color: #555; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
  th { background: #f0f0f0; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 16px; width: 40%; margin-left: auto; }
  .totals td { border: none; padding: 3px 8px; }
  .totals tr.final td { font-weight: bold; border-top: 2px solid #222; }
  .notes { margin-top: 24px; font-size: 11px; color: #555; }
  .status { text-transform: uppercase; font-weight: bold; }
  .bank { margin-top: 24px; }
  .bank-title { font-weight: bold; margin-bottom: 4px; }
  .bank-note { font-weight: bold; margin-top: 8px; }
</style>
</head>
<body>
<h1>Fatura {{.InvoiceNumber}}</h1>
<div class="meta">
  <div>Emissão: {{formatDate .IssueDate}}{{with .DueDate}} &mdash; Vencimento: {{formatDatePtr .}}{{end}}</div>
  <div>Processo: {{.ReferenceNumber}} &mdash; Situação: <span class="status">{{.Status}}</span></div>
</div>

<table>
  <tr><th>Consignatário</th><td>{{.Consignee}}</td><th>CNPJ</th><td>{{formatCNPJ .CNPJ}}</td></tr>
  <tr><th>Embarcador</th><td>{{.Shipper}}</td><th>Rota</th><td>{{.Route}}</td></tr>
  <tr><th>Taxa do dólar</th><td colspan="3">R$ {{formatRate .DollarRate}}</td></tr>
</table>

<table>
  <thead>
    <tr>
      <th>Taxas</th>
      <th class="num">Valor original</th>
      <th class="num">Taxa</th>
      <th class="num">Valor em reais</th>
    </tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{if eq .Currency "USD"}}US$ {{else}}R$ {{end}}{{formatMoney .Amount}}</td>
      <td class="num">{{formatRate (lineRate .Currency $.DollarRate)}}</td>
      <td class="num">R$ {{formatMoney (inBRL .Amount .Currency $.DollarRate)}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<table class="totals">
  <tr><td>Subtotal</td><td class="num">R$ {{formatMoney .TotalAmount}}</td></tr>
  <tr><td>IOF</td><td class="num">R$ {{formatMoney .IOFAmount}}</td></tr>
  <tr class="final"><td>Total</td><td class="num">R$ {{formatMoney .FinalAmount}}</td></tr>
</table>

<div class="bank">
  <div class="bank-title">DADOS BANCÁRIOS PARA PAGAMENTO:</div>
  <div>BANCO INTER</div>
  <div>AG: 0001 / CC: 36215776-6</div>
  <div>PIX: CNPJ: 39.344.589/0001-80</div>
  <div class="bank-note">Enviar comprovante para baixa e desbloqueio da carga no terminal Bandeirantes.</div>
</div>

{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
</body>
</html>`

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Recibo {{.ReceiptNumber}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 13px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 16px; }
  .box { border: 1px solid #999; padding: 16px; }
  .amount { font-size: 20px; font-weight: bold; margin: 12px 0; }
  .notes { margin-top: 24px; font-size: 11px; color: #555; }
</style>
</head>
<body>
<h1>Recibo {{.ReceiptNumber}}</h1>
<div class="box">
  <div>Recebemos de <strong>{{.Consignee}}</strong></div>
  <div class="amount">R$ {{formatMoney .Amount}}</div>
  <div>Referente à fatura <strong>{{.InvoiceNumber}}</strong></div>
  <div>Data do pagamento: {{formatDate .PaymentDate}}</div>
  {{if .PaymentMethod}}<div>Forma de pagamento: {{.PaymentMethod}}</div>{{end}}
</div>
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
</body>
</html>`

// Ensure DocumentComposer implements Composer
var _ document.Composer = (*DocumentComposer)(nil)
