package cli

import (
	"context"
	"fmt"
	"math/big"
)

// Gas prints the simulated gas figures for the contract operations.
func (a *App) Gas(ctx context.Context) error {
	price := a.chain.CurrentGasPrice()
	gwei := new(big.Int).Div(price, big.NewInt(1e9))

	printlnFn(fmt.Sprintf("Simulated gas price: %s gwei (account %s)", gwei, a.chain.Account().Hex()))
	for _, op := range []string{"issueCertificate", "revokeCertificate", "verifyCertificate"} {
		printlnFn(fmt.Sprintf("  %-18s %d gas", op, a.chain.GasEstimate(op)))
	}
	return nil
}
