package documents

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validReceipt() *ReceiptPayload {
	return &ReceiptPayload{
		ReceiptKind: ReceiptEnrollment,
		Student: Student{
			FullName:   "Awa Diallo",
			Matricule:  "M123",
			ClassLabel: "6ème A",
			BirthDate:  "14/03/2013",
			BirthPlace: "Bouaké",
			Guardian:   "Moussa Diallo",
		},
		AcademicYear: "2025-2026",
		Payments: []PaymentLine{
			{Type: "Inscription", Amount: 25000, Method: "Espèces", Reference: "P-001", Date: "05/09/2025"},
			{Type: "Scolarité", Amount: 50000, Method: "Mobile Money", Reference: "P-002", Date: "05/09/2025"},
		},
		TotalDue:  100000,
		TotalPaid: 75000,
	}
}

func validBulletin() *BulletinPayload {
	return &BulletinPayload{
		Student:      Student{FullName: "Awa Diallo", Matricule: "M123", ClassLabel: "6ème A"},
		AcademicYear: "2025-2026",
		Term:         "1er Trimestre",
		Subjects: []SubjectGrade{
			{Subject: "Mathématiques", Grade: 15.5, Coefficient: 4},
			{Subject: "Français", Grade: 12, Coefficient: 3},
			{Subject: "Histoire-Géographie", Grade: 9.75, Coefficient: 2},
		},
	}
}

func validCertificate(ct CertificateType) *CertificatePayload {
	return &CertificatePayload{
		Type:         ct,
		Student:      Student{FullName: "Awa Diallo", Matricule: "M123", ClassLabel: "6ème A", BirthDate: "14/03/2013", BirthPlace: "Bouaké"},
		AcademicYear: "2025-2026",
		IssuePlace:   "Abidjan",
		IssueDate:    "12/01/2026",
	}
}

func validFrequency() *FrequencyPayload {
	return &FrequencyPayload{
		Student:      Student{FullName: "Awa Diallo", Matricule: "M123", ClassLabel: "6ème A"},
		AcademicYear: "2025-2026",
		IssuePlace:   "Abidjan",
		IssueDate:    "12/01/2026",
	}
}

func validInvoice() *InvoicePayload {
	return &InvoicePayload{
		Number:  "F-2026-014",
		Student: Student{FullName: "Awa Diallo", Matricule: "M123", ClassLabel: "6ème A", Guardian: "Moussa Diallo"},
		Items: []InvoiceItem{
			{Label: "Scolarité 2ème tranche", Amount: 60000},
			{Label: "Frais de cantine", Amount: 40000},
		},
		AmountDue:  40000,
		AmountPaid: 60000,
		IssueDate:  "10/01/2026",
		DueDate:    "10/02/2026",
		Status:     InvoiceStatus(40000, 60000),
	}
}

func TestAppreciationBoundaries(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Bien"},
		{80, "Très Bien"},
		{79, "Bien"},
		{70, "Bien"},
		{69, "Satisfaisant"},
		{60, "Satisfaisant"},
		{59, "Passable"},
		{50, "Passable"},
		{49, "À Revoir"},
		{0, "À Revoir"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Appreciation(tt.percent), "percent=%d", tt.percent)
	}
}

func TestInvoiceStatus(t *testing.T) {
	require.Equal(t, StatusPaid, InvoiceStatus(0, 1000))
	require.Equal(t, StatusPartial, InvoiceStatus(500, 500))
	require.Equal(t, StatusOverdue, InvoiceStatus(1000, 0))
	require.Equal(t, StatusPaid, InvoiceStatus(0, 0))
}

func TestBulletinAverageIsUnweighted(t *testing.T) {
	b := &BulletinPayload{Subjects: []SubjectGrade{
		{Subject: "A", Grade: 10, Coefficient: 5},
		{Subject: "B", Grade: 15, Coefficient: 1},
	}}
	require.InDelta(t, 12.5, b.Average(), 1e-9)
	// 12.5/20 = 62.5%, rounded half up
	require.Equal(t, 63, b.Percent())
}

func TestGradePercent(t *testing.T) {
	require.Equal(t, 100, GradePercent(20))
	require.Equal(t, 89, GradePercent(17.8))
	require.Equal(t, 0, GradePercent(0))
}

func TestValidateRejectsMissingRequiredFields(t *testing.T) {
	var verr *ValidationError

	p := validReceipt()
	p.Student.FullName = ""
	err := p.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Fields)

	p = validReceipt()
	p.Payments = nil
	require.Error(t, p.Validate(), "a receipt needs at least one payment line")

	p = validReceipt()
	p.ReceiptKind = "bogus"
	require.Error(t, p.Validate())

	b := validBulletin()
	b.Term = ""
	require.Error(t, b.Validate())

	b = validBulletin()
	b.Subjects[1].Grade = 25
	require.Error(t, b.Validate(), "grades are over 20")

	c := validCertificate(CertificateScolarite)
	c.Type = "diplome"
	require.Error(t, c.Validate())

	i := validInvoice()
	i.Number = ""
	require.Error(t, i.Validate())

	i = validInvoice()
	i.Items = []InvoiceItem{}
	require.Error(t, i.Validate())
}

func TestValidateAcceptsCompletePayloads(t *testing.T) {
	require.NoError(t, validReceipt().Validate())
	require.NoError(t, validBulletin().Validate())
	require.NoError(t, validCertificate(CertificateScolarite).Validate())
	require.NoError(t, validCertificate(CertificateReussite).Validate())
	require.NoError(t, validCertificate(CertificateAssiduite).Validate())
	require.NoError(t, validFrequency().Validate())
	require.NoError(t, validInvoice().Validate())
}

func TestReceiptKindMapping(t *testing.T) {
	p := validReceipt()
	require.Equal(t, KindEnrollmentReceipt, p.Kind())
	p.ReceiptKind = ReceiptRegistration
	require.Equal(t, KindRegistrationReceipt, p.Kind())
	p.ReceiptKind = ReceiptPayment
	require.Equal(t, KindPaymentReceipt, p.Kind())
}
