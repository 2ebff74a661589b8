package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "hr-automation-hub/models/db"
)

// GenerateOfferLetter формирует оффер в PDF на встроенном шрифте,
// текст письма — на английском
func GenerateOfferLetter(offer dbmodels.Offer, candidateName, jobTitle string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferLetter panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Offer of Employment", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 2

	write := func(text string) {
		pdf.MultiCell(0, lineHt, text, "", "L", false)
		pdf.Ln(2)
	}

	write(fmt.Sprintf("Dear %s,", candidateName))
	write(fmt.Sprintf("We are pleased to offer you the position of %s.", jobTitle))
	write(fmt.Sprintf("Compensation: %.2f %s per year.", offer.Salary, offer.Currency))
	if offer.StartDate != nil {
		write(fmt.Sprintf("Proposed start date: %s.", offer.StartDate.Format("January 2, 2006")))
	}
	if offer.Notes != "" {
		write(offer.Notes)
	}
	write("Please reply to this message to accept or decline the offer.")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, lineHt, "Automation Hub HR Team", "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
