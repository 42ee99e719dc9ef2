package documents

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dksylla/ecoledoc/internal"
	"github.com/dksylla/ecoledoc/internal/assets"
	"github.com/dksylla/ecoledoc/internal/config"
	"github.com/dksylla/ecoledoc/internal/layout"
)

// Profile selects the rendering style. The full profile embeds the logo and
// subject photo and uses color emphasis; the minimal profile is the degraded
// text-only variant the orchestrator falls back to.
type Profile int

const (
	ProfileFull Profile = iota
	ProfileMinimal
)

// RenderedDocument is the final output handed back to the request handler.
type RenderedDocument struct {
	Bytes    []byte
	Filename string
}

// renderContext carries one render attempt's page, style and resolved assets
// through the builder call chain.
type renderContext struct {
	page    *layout.Page
	profile Profile
	cfg     *config.Config
	logo    *assets.Asset
	photo   *assets.Asset
}

// Generator turns payloads into finished PDF buffers. Every call constructs
// its own page, configuration snapshot and asset resolver, so a single
// Generator is safe to share across concurrent requests.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate validates the payload, renders it with the full profile and, if
// that fails for any reason, retries once with the minimal profile. A valid
// payload therefore always yields a document unless both paths fail.
func (g *Generator) Generate(p Payload) (*RenderedDocument, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	raw, err := g.render(p, ProfileFull)
	if err != nil {
		internal.Error("Primary render failed for %s %s: %v, retrying without images", p.Kind(), p.subjectID(), err)
		raw, err = g.render(p, ProfileMinimal)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrRenderFailed, p.Kind(), p.subjectID(), err)
		}
	}

	return &RenderedDocument{Bytes: raw, Filename: p.fileName()}, nil
}

func (g *Generator) render(p Payload, profile Profile) ([]byte, error) {
	cfg := config.Load()
	rc := &renderContext{
		page:    layout.NewPage(),
		profile: profile,
		cfg:     cfg,
	}
	if profile == ProfileFull {
		resolver := assets.NewResolver(assets.Options{
			LogoPath: cfg.LogoPath,
			LogoURL:  cfg.LogoURL,
		})
		rc.logo = resolver.Logo()
		rc.photo = resolver.Photo(p.photoURL())
	}
	if err := p.build(rc); err != nil {
		return nil, err
	}
	return rc.page.Bytes()
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeComponent strips anything that is not header-safe ASCII from a
// filename component. Matricules and invoice numbers come from user-entered
// rows and must not reach Content-Disposition untouched.
func sanitizeComponent(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "document"
	}
	return s
}

func (p *ReceiptPayload) fileName() string {
	label := "Recu_Paiement"
	switch p.ReceiptKind {
	case ReceiptEnrollment:
		label = "Recu_Inscription"
	case ReceiptRegistration:
		label = "Recu_Scolarite"
	}
	return fmt.Sprintf("%s_%s.pdf", label, sanitizeComponent(p.Student.Matricule))
}

func (p *BulletinPayload) fileName() string {
	return fmt.Sprintf("Bulletin_%s.pdf", sanitizeComponent(p.Student.Matricule))
}

func (p *CertificatePayload) fileName() string {
	return fmt.Sprintf("Certificat_%s_%s.pdf",
		sanitizeComponent(p.Student.Matricule), sanitizeComponent(string(p.Type)))
}

func (p *FrequencyPayload) fileName() string {
	return fmt.Sprintf("Certificat_Frequentation_%s.pdf", sanitizeComponent(p.Student.Matricule))
}

func (p *InvoicePayload) fileName() string {
	return fmt.Sprintf("Facture_%s.pdf", sanitizeComponent(p.Number))
}
