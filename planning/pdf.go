package planning

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/raushankrgupta/nutritrack/models"
)

// RenderPDF writes a printable one-section-per-day version of plan to w.
func RenderPDF(plan models.MealPlan, owner string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Weekly Meal Plan")
	pdf.Ln(10)
	if owner != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, tr(owner))
		pdf.Ln(8)
	}

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	for _, day := range models.Week {
		meals, ok := plan[day]
		if !ok {
			continue
		}
		dayTotal := 0
		for _, m := range meals {
			dayTotal += m.Calories
		}

		drawSectionTitle(pdf, fmt.Sprintf("%s (%d kcal)", strings.ToUpper(string(day)), dayTotal))
		pdf.SetFont("Helvetica", "", 11)
		if len(meals) == 0 {
			pdf.Cell(0, 7, "No meals planned")
			pdf.Ln(8)
			continue
		}
		for _, m := range meals {
			pdf.CellFormat(35, 7, tr(string(m.Type)), "", 0, "L", false, 0, "")
			pdf.CellFormat(115, 7, tr(m.Title), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%d kcal", m.Calories), "", 1, "R", false, 0, "")
			if len(m.Ingredients) > 0 {
				names := make([]string, 0, len(m.Ingredients))
				for _, ing := range m.Ingredients {
					names = append(names, fmt.Sprintf("%s %gg", ing.Name, ing.QuantityG))
				}
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, tr(strings.Join(names, ", ")), "", "", false)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func drawSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
}
