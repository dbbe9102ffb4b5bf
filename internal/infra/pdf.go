package infra

// pdf.go — receipt generation using go-pdf/fpdf.
// Produces A7-size thermal-style receipts with:
//   - Business header taken from settings
//   - Sale id and timestamp
//   - Customer and product lines
//   - For installment sales: markup breakdown and the full schedule table
//   - Bold total
//
// The output file is saved to storagePath/receipt_{saleID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"qistpos/internal/format"
	"qistpos/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders a receipt for a recorded sale. The sale must be
// loaded with its customer, product, witness and installment associations.
// storagePath is the directory where the PDF is written (created if needed).
// Returns the absolute path to the generated file.
func GenerateReceiptPDF(sale *model.Sale, settings *model.Settings, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("receipt_%s.pdf", sale.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	// Long installment schedules spill onto extra pages.
	pdf.SetAutoPageBreak(true, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	businessName := "Receipt"
	if settings != nil && settings.BusinessName != "" {
		businessName = settings.BusinessName
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, businessName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if settings != nil && settings.BusinessAddress != "" {
		pdf.CellFormat(contentW, 4, settings.BusinessAddress, "", 1, "C", false, 0, "")
	}
	if settings != nil && settings.BusinessPhone != "" {
		pdf.CellFormat(contentW, 4, settings.BusinessPhone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Sale "+shortID(sale.ID.String()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, format.Date(sale.CreatedAt), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Customer ──────────────────────────────────────────────────────────────
	if sale.Customer != nil {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "Customer: "+truncate(sale.Customer.Name, 28), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 4, "Contact: "+sale.Customer.ContactNumber, "", 1, "L", false, 0, "")
	}
	if sale.Witness != nil {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "Witness: "+truncate(sale.Witness.Name, 28), "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	// ── Product ───────────────────────────────────────────────────────────────
	labelW := contentW * 0.55
	valueW := contentW * 0.45

	if sale.Product != nil {
		name := truncate(sale.Product.Name+" "+sale.Product.Model, 30)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW, 5, name, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(labelW, 4, "Price:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 4, format.Currency(sale.Amount), "", 1, "R", false, 0, "")

	// ── Installment breakdown ────────────────────────────────────────────────
	if sale.SaleType == model.SaleTypeInstallment {
		if sale.MarkupPercentage != nil && sale.TotalWithMarkup != nil {
			pdf.CellFormat(labelW, 4, "Markup ("+sale.MarkupPercentage.StringFixed(0)+"%):", "", 0, "L", false, 0, "")
			markup := sale.TotalWithMarkup.Sub(sale.Amount)
			pdf.CellFormat(valueW, 4, format.Currency(markup), "", 1, "R", false, 0, "")
		}
		if sale.AdvancePayment != nil {
			pdf.CellFormat(labelW, 4, "Advance:", "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 4, format.Currency(*sale.AdvancePayment), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(1)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	// ── Total ─────────────────────────────────────────────────────────────────
	total := sale.Amount
	if sale.TotalWithMarkup != nil {
		total = *sale.TotalWithMarkup
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(labelW, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, format.Currency(total), "", 1, "R", false, 0, "")

	// ── Schedule ──────────────────────────────────────────────────────────────
	if len(sale.Installments) > 0 {
		pdf.Ln(2)
		col1 := contentW * 0.12 // number
		col2 := contentW * 0.34 // due date
		col3 := contentW * 0.32 // amount
		col4 := contentW * 0.22 // status

		pdf.SetFont("Helvetica", "B", 6)
		pdf.CellFormat(col1, 4, "#", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, "Due", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "Amount", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 4, "Status", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 6)
		for _, inst := range sale.Installments {
			pdf.CellFormat(col1, 4, fmt.Sprintf("%d", inst.InstallmentNumber), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 4, format.Date(inst.DueDate), "", 0, "L", false, 0, "")
			pdf.CellFormat(col3, 4, format.Currency(inst.Amount), "", 0, "R", false, 0, "")
			pdf.CellFormat(col4, 4, inst.Status, "", 1, "R", false, 0, "")
		}
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you for your business!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
