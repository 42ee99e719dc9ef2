package documents

import (
	"github.com/dksylla/ecoledoc/internal/layout"
)

var invoiceStatusLabels = map[string]string{
	StatusPaid:    "Payée",
	StatusPartial: "Paiement partiel",
	StatusOverdue: "En retard",
}

var invoiceColumns = []tableColumn{
	{"Désignation", marginX},
	{"Montant", 420},
}

func (p *InvoicePayload) build(rc *renderContext) error {
	page := rc.page
	school := p.School.withDefaults(rc.cfg)

	cur := drawHeader(rc, school)
	cur = drawTitleBox(rc, cur, "FACTURE N° "+p.Number)

	cur = drawField(rc, cur, "Émise le", p.IssueDate)
	cur = drawField(rc, cur, "Échéance", p.DueDate)
	cur = drawIdentityBlock(rc, cur, p.Student, p.AcademicYear)

	cur = drawTableHeader(rc, cur, invoiceColumns)
	for _, item := range p.Items {
		page.DrawText(item.Label, invoiceColumns[0].x, cur.Y, layout.Regular, 9)
		page.DrawText(layout.FormatXOF(item.Amount), invoiceColumns[1].x, cur.Y, layout.Regular, 9)
		cur = cur.Down(lineHeight)
	}

	cur = cur.Down(6)
	page.DrawLine(marginX, cur.Y, page.Width()-marginX, cur.Y)
	cur = cur.Down(22)

	page.DrawText("Montant payé : "+layout.FormatXOF(p.AmountPaid), cur.X, cur.Y, layout.Bold, 11)
	cur = cur.Down(18)
	cur = drawBalance(rc, cur, "Reste à payer", p.AmountDue)

	if p.Status != "" {
		label, ok := invoiceStatusLabels[p.Status]
		if !ok {
			label = p.Status
		}
		page.DrawText("Statut : "+label, cur.X, cur.Y, layout.Bold, 10)
		cur = cur.Down(18)
	}
	cur = cur.Down(14)

	drawSignatureBlock(rc, cur, "", "", "La Direction")
	return nil
}
