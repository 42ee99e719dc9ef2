package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dksylla/ecoledoc/documents"
	"github.com/dksylla/ecoledoc/internal"
)

type payloadEnvelope struct {
	Kind    documents.DocumentKind `json:"kind"`
	Payload json.RawMessage        `json:"payload"`
}

func decodePayload(raw []byte) (documents.Payload, error) {
	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse payload envelope: %w", err)
	}

	var p documents.Payload
	switch env.Kind {
	case documents.KindEnrollmentReceipt, documents.KindRegistrationReceipt, documents.KindPaymentReceipt:
		p = &documents.ReceiptPayload{}
	case documents.KindBulletin:
		p = &documents.BulletinPayload{}
	case documents.KindCertificate:
		p = &documents.CertificatePayload{}
	case documents.KindFrequencyCertificate:
		p = &documents.FrequencyPayload{}
	case documents.KindInvoice:
		p = &documents.InvoicePayload{}
	default:
		return nil, fmt.Errorf("unknown document kind %q", env.Kind)
	}

	if err := json.Unmarshal(env.Payload, p); err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", env.Kind, err)
	}
	return p, nil
}

func processFiles(f *Flag) error {
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := documents.NewGenerator()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(f.MaxConcurrent)

	var (
		mu        sync.Mutex
		generated []string
	)

	for _, path := range f.InputPaths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			p, err := decodePayload(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			doc, err := gen.Generate(p)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", path, err)
			}

			outPath := filepath.Join(f.OutputDir, doc.Filename)
			if err := os.WriteFile(outPath, doc.Bytes, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			internal.Info("Generated %s (%d bytes)", outPath, len(doc.Bytes))
			mu.Lock()
			generated = append(generated, outPath)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	internal.Info("[SUMMARY] Generated %d document(s) in %s", len(generated), f.OutputDir)
	return nil
}
