package documents

import (
	"fmt"

	"github.com/dksylla/ecoledoc/internal/layout"
)

var receiptTitles = map[ReceiptKind]string{
	ReceiptEnrollment:   "REÇU D'INSCRIPTION",
	ReceiptRegistration: "REÇU DE SCOLARITÉ",
	ReceiptPayment:      "REÇU DE PAIEMENT",
}

var receiptColumns = []tableColumn{
	{"Type", marginX},
	{"Montant", 230},
	{"Mode", 330},
	{"Référence", 400},
	{"Date", 490},
}

func (p *ReceiptPayload) build(rc *renderContext) error {
	page := rc.page
	school := p.School.withDefaults(rc.cfg)

	cur := drawHeader(rc, school)
	cur = drawTitleBox(rc, cur, receiptTitles[p.ReceiptKind])
	cur = drawIdentityBlock(rc, cur, p.Student, p.AcademicYear)

	cur = drawTableHeader(rc, cur, receiptColumns)
	for _, line := range p.Payments {
		page.DrawText(line.Type, receiptColumns[0].x, cur.Y, layout.Regular, 9)
		page.DrawText(layout.FormatXOF(line.Amount), receiptColumns[1].x, cur.Y, layout.Regular, 9)
		page.DrawText(line.Method, receiptColumns[2].x, cur.Y, layout.Regular, 9)
		page.DrawText(line.Reference, receiptColumns[3].x, cur.Y, layout.Regular, 9)
		page.DrawText(line.Date, receiptColumns[4].x, cur.Y, layout.Regular, 9)
		cur = cur.Down(lineHeight)
	}

	cur = cur.Down(6)
	page.DrawLine(marginX, cur.Y, page.Width()-marginX, cur.Y)
	cur = cur.Down(22)

	page.DrawText(fmt.Sprintf("Montant payé : %s", layout.FormatXOF(p.TotalPaid)), cur.X, cur.Y, layout.Bold, 11)
	cur = cur.Down(18)
	page.DrawText(fmt.Sprintf("Montant dû : %s", layout.FormatXOF(p.TotalDue)), cur.X, cur.Y, layout.Regular, 10)
	cur = cur.Down(18)
	cur = drawBalance(rc, cur, "Reste à payer", p.TotalDue-p.TotalPaid)
	cur = cur.Down(14)

	drawSignatureBlock(rc, cur, "", "", "Le Caissier")
	return nil
}
