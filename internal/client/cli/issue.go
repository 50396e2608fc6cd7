package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/models"
)

// Issue collects the certificate fields, persists the record (remotely or via
// the local fallback), and then runs the chain simulation. The simulation
// never gates persistence: its failure only prints a message.
func (a *App) Issue(ctx context.Context) error {

	var req models.IssueRequest
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Recipient name", &req.RecipientName},
		{"Recipient email (optional)", &req.RecipientEmail},
		{"Course name", &req.CourseName},
		{"Issuer name", &req.IssuerName},
		{"Completion date, YYYY-MM-DD (optional)", &req.CompletionDate},
		{"Description (optional)", &req.Description},
	}
	for _, p := range prompts {
		if *p.dst, err = GetSimpleText(a.reader, p.label, os.Stdout); err != nil {
			return err
		}
	}

	id, err := a.certService.Issue(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Invalid input:", err.Error())
		} else {
			printlnFn("Error issuing certificate:", err.Error())
		}
		return err
	}

	printlnFn("Certificate issued:", id)

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	tx, err := a.chain.IssueCertificate(ctx, id, certgen.DataHash(payload), req.IssuerName)
	if err != nil {
		printlnFn("Chain simulation skipped:", err.Error())
		return nil
	}
	printlnFn("Simulated transaction:", tx.Hex())

	return nil
}
