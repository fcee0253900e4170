package rendering

import (
	"context"
	"testing"
	"time"

	"github.com/comex/backend/internal/application/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "0,00"},
		{decimal.NewFromFloat(1234.5), "1.234,50"},
		{decimal.NewFromFloat(1234567.89), "1.234.567,89"},
		{decimal.NewFromFloat(-42.10), "-42,10"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney(c.in))
	}
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-95", formatCNPJ("12345678000195"))
	// Leaves malformed input alone
	assert.Equal(t, "123", formatCNPJ("123"))
}

func TestDocumentComposer_ComposeInvoice(t *testing.T) {
	composer, err := NewDocumentComposer()
	require.NoError(t, err)

	due := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	data := document.InvoiceDocumentData{
		InvoiceNumber:   "FAT-2024-010",
		IssueDate:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:         &due,
		Consignee:       "Importadora Santos Ltda",
		Shipper:         "Shanghai Trading Co",
		CNPJ:            "12345678000195",
		ReferenceNumber: "IMP-2024-001",
		Route:           "Shanghai / Santos",
		DollarRate:      decimal.NewFromFloat(5.1032),
		TotalAmount:     decimal.NewFromFloat(12500.00),
		IOFAmount:       decimal.NewFromFloat(475.00),
		FinalAmount:     decimal.NewFromFloat(12975.00),
		Status:          "pending",
		Lines: []document.InvoiceDocumentLine{
			{Description: "Despacho aduaneiro", Amount: decimal.NewFromInt(8000), Currency: "BRL"},
			{Description: "Armazenagem", Amount: decimal.NewFromInt(4500), Currency: "BRL"},
		},
	}

	html, err := composer.ComposeInvoice(data)

	require.NoError(t, err)
	assert.Contains(t, html, "FAT-2024-010")
	assert.Contains(t, html, "12.345.678/0001-95")
	assert.Contains(t, html, "10/03/2024")
	assert.Contains(t, html, "15/04/2024")
	assert.Contains(t, html, "12.975,00")
	assert.Contains(t, html, "5,1032")
	assert.Contains(t, html, "Despacho aduaneiro")
	assert.Contains(t, html, "Shanghai / Santos")
}

func TestDocumentComposer_InvoiceLineConversion(t *testing.T) {
	composer, err := NewDocumentComposer()
	require.NoError(t, err)

	data := document.InvoiceDocumentData{
		InvoiceNumber: "FAT-2024-011",
		IssueDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Consignee:     "Importadora Santos Ltda",
		DollarRate:    decimal.NewFromInt(5),
		TotalAmount:   decimal.NewFromInt(700),
		FinalAmount:   decimal.NewFromInt(700),
		Status:        "pending",
		Lines: []document.InvoiceDocumentLine{
			{Description: "Frete internacional", Amount: decimal.NewFromInt(100), Currency: "USD"},
			{Description: "Despacho aduaneiro", Amount: decimal.NewFromInt(200), Currency: "BRL"},
		},
	}

	html, err := composer.ComposeInvoice(data)
	require.NoError(t, err)

	// USD line converts at the invoice's dollar rate; BRL passes through at 1
	assert.Contains(t, html, "US$ 100,00")
	assert.Contains(t, html, "5,0000")
	assert.Contains(t, html, "R$ 500,00")
	assert.Contains(t, html, "R$ 200,00")
	assert.Contains(t, html, "1,0000")
}

func TestDocumentComposer_InvoiceBankDetails(t *testing.T) {
	composer, err := NewDocumentComposer()
	require.NoError(t, err)

	data := document.InvoiceDocumentData{
		InvoiceNumber: "FAT-2024-012",
		IssueDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Consignee:     "Importadora Santos Ltda",
		DollarRate:    decimal.NewFromInt(5),
		Status:        "pending",
	}

	html, err := composer.ComposeInvoice(data)
	require.NoError(t, err)

	assert.Contains(t, html, "DADOS BANCÁRIOS PARA PAGAMENTO:")
	assert.Contains(t, html, "BANCO INTER")
	assert.Contains(t, html, "AG: 0001 / CC: 36215776-6")
	assert.Contains(t, html, "PIX: CNPJ: 39.344.589/0001-80")
	assert.Contains(t, html, "Enviar comprovante")
}

func TestDocumentComposer_ComposeReceipt(t *testing.T) {
	composer, err := NewDocumentComposer()
	require.NoError(t, err)

	data := document.ReceiptDocumentData{
		ReceiptNumber: "REC-2024-005",
		InvoiceNumber: "FAT-2024-010",
		Consignee:     "Importadora Santos Ltda",
		Amount:        decimal.NewFromFloat(12975.00),
		PaymentDate:   time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "pix",
	}

	html, err := composer.ComposeReceipt(data)

	require.NoError(t, err)
	assert.Contains(t, html, "REC-2024-005")
	assert.Contains(t, html, "FAT-2024-010")
	assert.Contains(t, html, "12.975,00")
	assert.Contains(t, html, "12/04/2024")
	assert.Contains(t, html, "pix")
}

func TestChromedpRenderer_RejectsEmptyHTML(t *testing.T) {
	renderer := &ChromedpRenderer{config: &ChromedpConfig{DefaultTimeout: time.Second}}

	_, err := renderer.Render(context.Background(), &RenderRequest{HTML: "   "})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}
