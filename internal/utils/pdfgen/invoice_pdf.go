// Package pdfgen renders invoices as printable PDF documents. Rendering is a
// pure function of invoice data to a byte stream; any failure fails the whole
// document, since a partial invoice is worse than no invoice.
package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/billing"
	"github.com/jung-kurt/gofpdf"
)

// BusinessInfo is the business identity block printed in the header. All
// values are supplied by the caller; nothing is read from the environment.
type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

const margin = 15.0 // mm, ~1.5cm on ISO A4

// Theme colors, matching the storefront palette.
var (
	headerBlue  = [3]int{30, 64, 175}   // #1e40af
	titleAmber  = [3]int{245, 158, 11}  // #f59e0b
	rowGray     = [3]int{243, 244, 246} // #f3f4f6
	totalBlue   = [3]int{239, 246, 255} // #eff6ff
	mutedGray   = [3]int{128, 128, 128}
	borderGray  = [3]int{160, 160, 160}
)

// RenderInvoice lays out a fully-resolved invoice (items and customer snapshot
// included) as an A4 PDF and returns the document bytes. Line items appear in
// input order. generatedAt is stamped into the footer.
func RenderInvoice(inv domain.Invoice, business BusinessInfo, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	usableW := pageW - 2*margin

	writeHeader(pdf, business, usableW)
	writeInvoiceInfo(pdf, inv, usableW)
	writeBillTo(pdf, inv)
	writeItemsTable(pdf, inv.Items, usableW)
	writeTotals(pdf, inv, usableW)
	writeNotes(pdf, inv.Notes)
	writeFooter(pdf, usableW, generatedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, business BusinessInfo, usableW float64) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.CellFormat(usableW, 10, business.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(mutedGray[0], mutedGray[1], mutedGray[2])
	pdf.CellFormat(usableW, 5, business.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(usableW, 5, fmt.Sprintf("Phone: %s | Email: %s", business.Phone, business.Email), "", 1, "C", false, 0, "")
	pdf.CellFormat(usableW, 5, fmt.Sprintf("GSTIN: %s", business.GSTIN), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Divider line under the header block.
	pdf.SetDrawColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.SetLineWidth(0.6)
	y := pdf.GetY()
	pdf.Line(margin, y, margin+usableW, y)
	pdf.Ln(4)
}

func writeInvoiceInfo(pdf *gofpdf.Fpdf, inv domain.Invoice, usableW float64) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(titleAmber[0], titleAmber[1], titleAmber[2])
	pdf.CellFormat(usableW, 9, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	dueDate := "N/A"
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format("02-01-2006")
	}

	pdf.SetTextColor(0, 0, 0)
	infoRow(pdf, "Invoice Number:", inv.InvoiceNumber, "Invoice Date:", inv.InvoiceDate.Format("02-01-2006"))
	infoRow(pdf, "Due Date:", dueDate, "Status:", string(inv.PaymentStatus))
	pdf.Ln(4)
}

func infoRow(pdf *gofpdf.Fpdf, label1, value1, label2, value2 string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 7, label1, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(50, 7, value1, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 7, label2, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(50, 7, value2, "", 1, "L", false, 0, "")
}

func writeBillTo(pdf *gofpdf.Fpdf, inv domain.Invoice) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.CellFormat(0, 7, "Bill To:", "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, inv.CustomerName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if inv.CustomerAddress != "" {
		pdf.MultiCell(0, 5, inv.CustomerAddress, "", "L", false)
	}
	if inv.CustomerPhone != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s", inv.CustomerPhone), "", 1, "L", false, 0, "")
	}
	if inv.CustomerGST != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("GSTIN: %s", inv.CustomerGST), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

// Column widths for the items table, summing to the usable width (180mm).
var itemCols = []struct {
	width float64
	title string
	align string
}{
	{12, "S.No", "C"},
	{60, "Item Description", "L"},
	{15, "Qty", "C"},
	{15, "Unit", "C"},
	{28, "Rate", "R"},
	{15, "Tax %", "C"},
	{35, "Amount", "R"},
}

func writeItemsTable(pdf *gofpdf.Fpdf, items []domain.InvoiceItem, usableW float64) {
	// Header row, visually distinguished.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(borderGray[0], borderGray[1], borderGray[2])
	pdf.SetLineWidth(0.2)
	for _, col := range itemCols {
		pdf.CellFormat(col.width, 9, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, item := range items {
		// Alternate row shading for readability.
		fill := i%2 == 1
		pdf.SetFillColor(rowGray[0], rowGray[1], rowGray[2])

		cells := []string{
			fmt.Sprintf("%d", i+1),
			item.ProductName,
			item.Quantity.String(),
			item.Unit,
			billing.FormatCurrency(item.UnitPrice),
			fmt.Sprintf("%s%%", item.TaxRate.StringFixed(1)),
			billing.FormatCurrency(item.TotalAmount),
		}
		for c, col := range itemCols {
			pdf.CellFormat(col.width, 8, cells[c], "1", 0, col.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeTotals(pdf *gofpdf.Fpdf, inv domain.Invoice, usableW float64) {
	labelW := usableW - 40.0
	valueW := 40.0

	pdf.SetFont("Helvetica", "B", 10)
	totalRow := func(label, value string) {
		pdf.CellFormat(labelW, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal:", billing.FormatCurrency(inv.Subtotal))
	totalRow("Tax:", billing.FormatCurrency(inv.TaxAmount))
	totalRow("Discount:", "-"+billing.FormatCurrency(inv.DiscountAmount))

	// Emphasized grand total row.
	pdf.SetDrawColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.SetLineWidth(0.6)
	y := pdf.GetY() + 1
	pdf.Line(margin, y, margin+usableW, y)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.SetFillColor(totalBlue[0], totalBlue[1], totalBlue[2])
	pdf.CellFormat(labelW, 11, "GRAND TOTAL:", "", 0, "R", true, 0, "")
	pdf.CellFormat(valueW, 11, billing.FormatCurrency(inv.TotalAmount), "", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

func writeNotes(pdf *gofpdf.Fpdf, notes string) {
	if notes == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.CellFormat(0, 7, "Notes:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5, notes, "", "L", false)
	pdf.Ln(4)
}

func writeFooter(pdf *gofpdf.Fpdf, usableW float64, generatedAt time.Time) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(mutedGray[0], mutedGray[1], mutedGray[2])
	pdf.CellFormat(usableW, 5, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.CellFormat(usableW, 5, fmt.Sprintf("Generated on %s", generatedAt.Format("02-01-2006 15:04")), "", 1, "C", false, 0, "")
}
