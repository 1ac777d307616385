package payslip

import (
	"bytes"
	"fmt"

	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// renderSlip draws a one-page payment slip from the committed pay-run
// snapshot. The snapshot, not the live structure, is authoritative: a later
// salary revision must not change an issued slip.
func renderSlip(emp employee.Employee, p payroll.Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payment Slip %s", p.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Payment Slip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Month: %s", p.Month), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Employee", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, emp.Name, "", 1, "L", false, 0, "")

	if emp.Department != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, "Department", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, *emp.Department, "", 1, "L", false, 0, "")
	}
	if emp.Designation != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, "Designation", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, *emp.Designation, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Paid Days", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%d", p.PaidDays), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Transaction", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, p.TransactionID, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Earnings", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range p.Earnings {
		pdf.CellFormat(120, 7, c.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, c.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 7, "Gross Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, p.GrossSalary.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Deductions", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range p.Deductions {
		pdf.CellFormat(120, 7, c.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, c.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 7, "Total Deductions", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, p.TotalDeductions.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, "Net Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 9, p.NetSalary.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payment slip: %w", err)
	}
	return buf.Bytes(), nil
}
