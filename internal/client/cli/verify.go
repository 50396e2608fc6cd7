package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/certchain/internal/common"
)

// Verify prompts for a certificate identifier and looks it up. "Not found" is
// a distinguishable outcome, not a transport failure.
func (a *App) Verify(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Certificate ID (CERT-YYYY-XXXXXX)", os.Stdout)
	if err != nil {
		return err
	}

	cert, err := a.certService.Verify(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Certificate", id, "was not found: invalid or never issued")
		} else {
			printlnFn("Verification request failed:", err.Error())
		}
		return err
	}

	printlnFn("Certificate is valid:", cert.IsValid)
	printlnFn(fmt.Sprintf("  %s | %s | %s | issued %s",
		cert.CertificateID, cert.RecipientName, cert.CourseName, cert.IssuedAt.Format("2006-01-02 15:04")))
	printlnFn("  record hash:", cert.BlockchainHash)

	rec, err := a.chain.VerifyCertificate(ctx, id)
	if err != nil {
		printlnFn("Chain simulation skipped:", err.Error())
		return nil
	}
	printlnFn("Simulated on-chain record:", rec.Hash.Hex(), "issuer", rec.Issuer)

	return nil
}
