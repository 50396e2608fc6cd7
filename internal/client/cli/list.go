package cli

import (
	"context"
	"fmt"
)

// List prints all certificates, newest first.
func (a *App) List(ctx context.Context) error {
	certs, err := a.certService.GetAll(ctx)
	if err != nil {
		printlnFn("Error listing certificates:", err.Error())
		return err
	}

	if len(certs) == 0 {
		printlnFn("No certificates yet")
		return nil
	}

	for _, c := range certs {
		printlnFn(fmt.Sprintf("%s | %s | %s | %s | valid=%v",
			c.CertificateID, c.RecipientName, c.CourseName, c.IssuedAt.Format("2006-01-02 15:04"), c.IsValid))
	}
	return nil
}
