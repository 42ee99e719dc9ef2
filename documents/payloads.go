package documents

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/dksylla/ecoledoc/internal/config"
)

// DocumentKind names one of the official documents the school issues.
type DocumentKind string

const (
	KindEnrollmentReceipt    DocumentKind = "recu_inscription"
	KindRegistrationReceipt  DocumentKind = "recu_scolarite"
	KindPaymentReceipt       DocumentKind = "recu_paiement"
	KindBulletin             DocumentKind = "bulletin"
	KindCertificate          DocumentKind = "certificat"
	KindFrequencyCertificate DocumentKind = "certificat_frequentation"
	KindInvoice              DocumentKind = "facture"
)

var validate = validator.New()

// Payload is a typed document input. Payloads are pure serializable data; the
// set of implementations is closed.
type Payload interface {
	Kind() DocumentKind
	Validate() error

	subjectID() string
	photoURL() string
	fileName() string
	build(rc *renderContext) error
}

// SchoolIdentity is the letterhead identity. Blank fields fall back to the
// configured defaults so the header always carries a school name.
type SchoolIdentity struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

func (s SchoolIdentity) withDefaults(cfg *config.Config) SchoolIdentity {
	if s.Name == "" {
		s.Name = cfg.SchoolName
	}
	if s.Address == "" {
		s.Address = cfg.SchoolAddress
	}
	if s.Phone == "" {
		s.Phone = cfg.SchoolPhone
	}
	if s.Email == "" {
		s.Email = cfg.SchoolEmail
	}
	return s
}

// Student describes the subject of a document.
type Student struct {
	FullName   string `json:"full_name" validate:"required"`
	Matricule  string `json:"matricule" validate:"required"`
	ClassLabel string `json:"class_label,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
	Guardian   string `json:"guardian,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// PaymentLine is one row of a payments table. Amounts are XOF, which has no
// subdivision. Lines render in the order the caller supplied them.
type PaymentLine struct {
	Type      string `json:"type" validate:"required"`
	Amount    int64  `json:"amount" validate:"gte=0"`
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
	Date      string `json:"date,omitempty"`
}

// ReceiptKind distinguishes the three receipt documents sharing one payload
// shape.
type ReceiptKind string

const (
	ReceiptEnrollment   ReceiptKind = "inscription"
	ReceiptRegistration ReceiptKind = "scolarite"
	ReceiptPayment      ReceiptKind = "paiement"
)

type ReceiptPayload struct {
	ReceiptKind  ReceiptKind    `json:"receipt_kind" validate:"required,oneof=inscription scolarite paiement"`
	School       SchoolIdentity `json:"school"`
	Student      Student        `json:"student"`
	AcademicYear string         `json:"academic_year,omitempty"`
	Payments     []PaymentLine  `json:"payments" validate:"min=1,dive"`
	TotalDue     int64          `json:"total_due" validate:"gte=0"`
	TotalPaid    int64          `json:"total_paid" validate:"gte=0"`
}

func (p *ReceiptPayload) Kind() DocumentKind {
	switch p.ReceiptKind {
	case ReceiptEnrollment:
		return KindEnrollmentReceipt
	case ReceiptRegistration:
		return KindRegistrationReceipt
	}
	return KindPaymentReceipt
}

func (p *ReceiptPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (p *ReceiptPayload) subjectID() string { return p.Student.Matricule }
func (p *ReceiptPayload) photoURL() string  { return p.Student.PhotoURL }

// SubjectGrade is one graded subject on a bulletin. Grades are over 20.
type SubjectGrade struct {
	Subject     string  `json:"subject" validate:"required"`
	Grade       float64 `json:"grade" validate:"gte=0,lte=20"`
	Coefficient int     `json:"coefficient,omitempty"`
}

type BulletinPayload struct {
	School       SchoolIdentity `json:"school"`
	Student      Student        `json:"student"`
	AcademicYear string         `json:"academic_year,omitempty"`
	Term         string         `json:"term" validate:"required"`
	Subjects     []SubjectGrade `json:"subjects" validate:"min=1,dive"`
}

func (p *BulletinPayload) Kind() DocumentKind { return KindBulletin }

func (p *BulletinPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (p *BulletinPayload) subjectID() string { return p.Student.Matricule }
func (p *BulletinPayload) photoURL() string  { return p.Student.PhotoURL }

// Average is the arithmetic mean of the raw grades. Coefficients do not
// weight it; that matches how the school computes it today.
func (p *BulletinPayload) Average() float64 {
	if len(p.Subjects) == 0 {
		return 0
	}
	var sum float64
	for _, s := range p.Subjects {
		sum += s.Grade
	}
	return sum / float64(len(p.Subjects))
}

// Percent converts the average over 20 to a percentage rounded to the
// nearest integer.
func (p *BulletinPayload) Percent() int {
	return GradePercent(p.Average())
}

// GradePercent converts a grade over 20 to a rounded percentage.
func GradePercent(grade float64) int {
	return int(math.Round(grade / 20 * 100))
}

// Appreciation maps a percentage score to the fixed appreciation scale
// printed on bulletins.
func Appreciation(percent int) string {
	switch {
	case percent >= 90:
		return "Excellent"
	case percent >= 80:
		return "Très Bien"
	case percent >= 70:
		return "Bien"
	case percent >= 60:
		return "Satisfaisant"
	case percent >= 50:
		return "Passable"
	}
	return "À Revoir"
}

// CertificateType selects the certificate wording.
type CertificateType string

const (
	CertificateScolarite CertificateType = "scolarite"
	CertificateReussite  CertificateType = "reussite"
	CertificateAssiduite CertificateType = "assiduite"
)

type CertificatePayload struct {
	Type         CertificateType `json:"type" validate:"required,oneof=scolarite reussite assiduite"`
	School       SchoolIdentity  `json:"school"`
	Student      Student         `json:"student"`
	AcademicYear string          `json:"academic_year,omitempty"`
	IssuePlace   string          `json:"issue_place,omitempty"`
	IssueDate    string          `json:"issue_date,omitempty"`
}

func (p *CertificatePayload) Kind() DocumentKind { return KindCertificate }

func (p *CertificatePayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (p *CertificatePayload) subjectID() string { return p.Student.Matricule }
func (p *CertificatePayload) photoURL() string  { return p.Student.PhotoURL }

// FrequencyPayload is the certificat de fréquentation: attestation that the
// student attends the school.
type FrequencyPayload struct {
	School       SchoolIdentity `json:"school"`
	Student      Student        `json:"student"`
	AcademicYear string         `json:"academic_year,omitempty"`
	IssuePlace   string         `json:"issue_place,omitempty"`
	IssueDate    string         `json:"issue_date,omitempty"`
}

func (p *FrequencyPayload) Kind() DocumentKind { return KindFrequencyCertificate }

func (p *FrequencyPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (p *FrequencyPayload) subjectID() string { return p.Student.Matricule }
func (p *FrequencyPayload) photoURL() string  { return p.Student.PhotoURL }

type InvoiceItem struct {
	Label  string `json:"label" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0"`
}

type InvoicePayload struct {
	Number       string         `json:"number" validate:"required"`
	School       SchoolIdentity `json:"school"`
	Student      Student        `json:"student"`
	AcademicYear string         `json:"academic_year,omitempty"`
	Items        []InvoiceItem  `json:"items" validate:"min=1,dive"`
	AmountDue    int64          `json:"amount_due" validate:"gte=0"`
	AmountPaid   int64          `json:"amount_paid" validate:"gte=0"`
	IssueDate    string         `json:"issue_date,omitempty"`
	DueDate      string         `json:"due_date,omitempty"`

	// Status is the precomputed payment status label; the caller owns the
	// derivation (see InvoiceStatus), the builder only renders it.
	Status string `json:"status,omitempty"`
}

func (p *InvoicePayload) Kind() DocumentKind { return KindInvoice }

func (p *InvoicePayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (p *InvoicePayload) subjectID() string { return p.Number }
func (p *InvoicePayload) photoURL() string  { return p.Student.PhotoURL }

// Invoice payment status values.
const (
	StatusPaid    = "paid"
	StatusPartial = "partial"
	StatusOverdue = "overdue"
)

// InvoiceStatus derives the 3-state payment status from the outstanding and
// settled amounts.
func InvoiceStatus(amountDue, amountPaid int64) string {
	switch {
	case amountDue == 0:
		return StatusPaid
	case amountPaid > 0:
		return StatusPartial
	}
	return StatusOverdue
}
