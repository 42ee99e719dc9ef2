package documents

import (
	"fmt"

	"github.com/dksylla/ecoledoc/internal/layout"
)

const (
	marginX    = 40.0
	headerTopY = 60.0
	lineHeight = 14.0

	// logos and photos render at a fixed square, whatever the source ratio
	imageSize = 64.0
)

// drawHeader lays down the national heading, motto and centered school
// identity lines, plus the logo and subject photo corners when the profile
// allows. Returns the cursor under the separator rule.
func drawHeader(rc *renderContext, school SchoolIdentity) layout.Cursor {
	page := rc.page
	cur := layout.Cursor{X: marginX, Y: headerTopY}

	if rc.profile == ProfileFull {
		page.DrawImage(rc.logo, marginX, 40, imageSize, imageSize)
		page.DrawImage(rc.photo, page.Width()-marginX-imageSize, 40, imageSize, imageSize)
	}

	page.DrawCenteredText(rc.cfg.NationalHeading, cur.Y, layout.Bold, 11)
	cur = cur.Down(lineHeight)
	page.DrawCenteredText(rc.cfg.Motto, cur.Y, layout.Italic, 9)
	cur = cur.Down(lineHeight * 1.6)

	page.DrawCenteredText(school.Name, cur.Y, layout.Bold, 14)
	cur = cur.Down(lineHeight)
	for _, line := range schoolContactLines(school) {
		page.DrawCenteredText(line, cur.Y, layout.Regular, 9)
		cur = cur.Down(12)
	}

	cur = cur.Down(6)
	page.DrawLine(marginX, cur.Y, page.Width()-marginX, cur.Y)
	return cur.Down(30)
}

func schoolContactLines(school SchoolIdentity) []string {
	var lines []string
	if school.Address != "" {
		lines = append(lines, school.Address)
	}
	if school.Phone != "" {
		lines = append(lines, "Tél : "+school.Phone)
	}
	if school.Email != "" {
		lines = append(lines, "Email : "+school.Email)
	}
	return lines
}

// drawTitleBox draws the bordered box naming the document type.
func drawTitleBox(rc *renderContext, cur layout.Cursor, title string) layout.Cursor {
	page := rc.page
	const boxH = 28.0
	boxW := page.MeasureText(title, layout.Bold, 13) + 40
	if boxW < 260 {
		boxW = 260
	}
	x := (page.Width() - boxW) / 2

	var fill *layout.RGB
	if rc.profile == ProfileFull {
		fill = &layout.Gray
	}
	page.DrawRect(x, cur.Y, boxW, boxH, fill)
	page.DrawCenteredText(title, cur.Y+boxH/2+4.5, layout.Bold, 13)
	return cur.Down(boxH + 26)
}

// drawField renders one label/value row. Empty values are omitted entirely.
func drawField(rc *renderContext, cur layout.Cursor, label, value string) layout.Cursor {
	if value == "" {
		return cur
	}
	rc.page.DrawText(label, cur.X, cur.Y, layout.Bold, 10)
	rc.page.DrawText(value, cur.X+150, cur.Y, layout.Regular, 10)
	return cur.Down(16)
}

// drawIdentityBlock prints the subject identity rows shared by most
// document kinds.
func drawIdentityBlock(rc *renderContext, cur layout.Cursor, st Student, academicYear string) layout.Cursor {
	cur = drawField(rc, cur, "Nom et prénoms", st.FullName)
	cur = drawField(rc, cur, "Matricule", st.Matricule)
	cur = drawField(rc, cur, "Classe", st.ClassLabel)
	cur = drawField(rc, cur, "Né(e) le", joinBirth(st))
	cur = drawField(rc, cur, "Tuteur", st.Guardian)
	cur = drawField(rc, cur, "Année scolaire", academicYear)
	return cur.Down(10)
}

func joinBirth(st Student) string {
	switch {
	case st.BirthDate != "" && st.BirthPlace != "":
		return st.BirthDate + " à " + st.BirthPlace
	case st.BirthDate != "":
		return st.BirthDate
	}
	return st.BirthPlace
}

// tableColumn pairs a header label with its fixed x offset. Positions are
// hardcoded per document kind; this is deliberately not a generic table
// engine.
type tableColumn struct {
	header string
	x      float64
}

func drawTableHeader(rc *renderContext, cur layout.Cursor, cols []tableColumn) layout.Cursor {
	for _, col := range cols {
		rc.page.DrawText(col.header, col.x, cur.Y, layout.Bold, 9)
	}
	cur = cur.Down(6)
	rc.page.DrawLine(marginX, cur.Y, rc.page.Width()-marginX, cur.Y)
	return cur.Down(lineHeight)
}

// drawBalance prints an outstanding balance, with red bold emphasis in the
// full profile when something is still owed.
func drawBalance(rc *renderContext, cur layout.Cursor, label string, balance int64) layout.Cursor {
	text := fmt.Sprintf("%s : %s", label, layout.FormatXOF(balance))
	if balance > 0 && rc.profile == ProfileFull {
		rc.page.DrawColoredText(text, cur.X, cur.Y, layout.Bold, 11, layout.Red)
	} else {
		rc.page.DrawText(text, cur.X, cur.Y, layout.Bold, 11)
	}
	return cur.Down(18)
}

// drawSignatureBlock prints the issue line and the signature area on the
// right side of the page.
func drawSignatureBlock(rc *renderContext, cur layout.Cursor, place, date, signer string) layout.Cursor {
	page := rc.page
	x := page.Width() - marginX - 180

	if place != "" || date != "" {
		page.DrawText(issueLine(place, date), x, cur.Y, layout.Regular, 10)
		cur = cur.Down(lineHeight * 2)
	}
	page.DrawText(signer, x, cur.Y, layout.Bold, 10)
	cur = cur.Down(lineHeight * 3.5)
	page.DrawText("Signature et cachet", x, cur.Y, layout.Italic, 8)
	return cur.Down(lineHeight)
}

func issueLine(place, date string) string {
	switch {
	case place != "" && date != "":
		return fmt.Sprintf("Fait à %s, le %s", place, date)
	case date != "":
		return "Fait le " + date
	}
	return "Fait à " + place
}
