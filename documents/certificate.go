package documents

import (
	"fmt"

	"github.com/dksylla/ecoledoc/internal/layout"
)

var certificateTitles = map[CertificateType]string{
	CertificateScolarite: "CERTIFICAT DE SCOLARITÉ",
	CertificateReussite:  "CERTIFICAT DE RÉUSSITE",
	CertificateAssiduite: "CERTIFICAT D'ASSIDUITÉ",
}

func (p *CertificatePayload) build(rc *renderContext) error {
	clause := certificateClause(p.Type, p.Student, p.AcademicYear)
	return buildAttestation(rc, p.School, p.Student,
		certificateTitles[p.Type], clause, p.IssuePlace, p.IssueDate)
}

func certificateClause(t CertificateType, st Student, year string) string {
	var clause string
	switch t {
	case CertificateReussite:
		clause = "a satisfait aux conditions de passage et est admis(e) en classe supérieure"
	case CertificateAssiduite:
		clause = "a fait preuve d'une assiduité régulière aux cours"
	default:
		clause = "est régulièrement inscrit(e) et suit les cours dans notre établissement"
		if st.ClassLabel != "" {
			clause = "est régulièrement inscrit(e) et suit les cours en classe de " + st.ClassLabel
		}
	}
	if year != "" {
		clause += " au titre de l'année scolaire " + year
	}
	return clause
}

func (p *FrequencyPayload) build(rc *renderContext) error {
	clause := "fréquente régulièrement l'établissement"
	if p.Student.ClassLabel != "" {
		clause += " en classe de " + p.Student.ClassLabel
	}
	if p.AcademicYear != "" {
		clause += " depuis le début de l'année scolaire " + p.AcademicYear
	}
	return buildAttestation(rc, p.School, p.Student,
		"CERTIFICAT DE FRÉQUENTATION", clause, p.IssuePlace, p.IssueDate)
}

// buildAttestation is the shared certificate body: intro, centered student
// name, the attesting clause and the customary closing formula.
func buildAttestation(rc *renderContext, school SchoolIdentity, st Student, title, clause, place, date string) error {
	page := rc.page
	school = school.withDefaults(rc.cfg)
	bodyWidth := page.Width() - 2*marginX

	cur := drawHeader(rc, school)
	cur = drawTitleBox(rc, cur, title)

	intro := fmt.Sprintf("Je soussigné(e), Directeur de l'établissement %s, certifie que :", school.Name)
	cur = page.DrawWrappedText(intro, cur, bodyWidth, lineHeight+2, layout.Regular, 11)
	cur = cur.Down(12)

	page.DrawCenteredText(st.FullName, cur.Y, layout.Bold, 13)
	cur = cur.Down(lineHeight + 10)

	cur = page.DrawWrappedText(identitySentence(st)+" "+clause+".",
		cur, bodyWidth, lineHeight+2, layout.Regular, 11)
	cur = cur.Down(12)

	cur = page.DrawWrappedText(
		"En foi de quoi, le présent certificat lui est délivré pour servir et valoir ce que de droit.",
		cur, bodyWidth, lineHeight+2, layout.Regular, 11)
	cur = cur.Down(30)

	drawSignatureBlock(rc, cur, place, date, "Le Directeur")
	return nil
}

func identitySentence(st Student) string {
	s := "Titulaire du matricule " + st.Matricule
	if st.BirthDate != "" {
		s += ", né(e) le " + st.BirthDate
		if st.BirthPlace != "" {
			s += " à " + st.BirthPlace
		}
	}
	return s + ","
}
