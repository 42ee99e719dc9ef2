package documents

import (
	"fmt"
	"strconv"

	"github.com/dksylla/ecoledoc/internal/layout"
)

var bulletinColumns = []tableColumn{
	{"Matière", marginX},
	{"Note /20", 270},
	{"Coef", 350},
	{"Appréciation", 420},
}

func (p *BulletinPayload) build(rc *renderContext) error {
	page := rc.page
	school := p.School.withDefaults(rc.cfg)

	cur := drawHeader(rc, school)
	cur = drawTitleBox(rc, cur, fmt.Sprintf("BULLETIN DE NOTES - %s", p.Term))
	cur = drawIdentityBlock(rc, cur, p.Student, p.AcademicYear)

	cur = drawTableHeader(rc, cur, bulletinColumns)
	for _, s := range p.Subjects {
		page.DrawText(s.Subject, bulletinColumns[0].x, cur.Y, layout.Regular, 9)
		page.DrawText(fmt.Sprintf("%.2f", s.Grade), bulletinColumns[1].x, cur.Y, layout.Regular, 9)
		if s.Coefficient > 0 {
			page.DrawText(strconv.Itoa(s.Coefficient), bulletinColumns[2].x, cur.Y, layout.Regular, 9)
		}
		page.DrawText(Appreciation(GradePercent(s.Grade)), bulletinColumns[3].x, cur.Y, layout.Regular, 9)
		cur = cur.Down(lineHeight)
	}

	cur = cur.Down(6)
	page.DrawLine(marginX, cur.Y, page.Width()-marginX, cur.Y)
	cur = cur.Down(22)

	page.DrawText(fmt.Sprintf("Moyenne générale : %.2f/20 (%d%%)", p.Average(), p.Percent()),
		cur.X, cur.Y, layout.Bold, 11)
	cur = cur.Down(18)
	page.DrawText("Appréciation générale : "+Appreciation(p.Percent()), cur.X, cur.Y, layout.Bold, 10)
	cur = cur.Down(24)

	drawSignatureBlock(rc, cur, "", "", "Le Directeur")
	return nil
}
