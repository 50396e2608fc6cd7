// Package chainsim stands in for a smart-contract client. It fabricates
// transaction hashes, on-chain verification payloads, gas figures and a
// wallet identity, with artificial delays. Nothing is committed anywhere:
// the component models latency and response shape only.
package chainsim

import (
	"context"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/ethereum/go-ethereum/common"
)

const (
	issueDelay  = 2 * time.Second
	verifyDelay = 1500 * time.Millisecond

	minGasPriceGwei = 20
	maxGasPriceGwei = 60
)

// gasEstimates holds fixed per-operation stand-ins, in gas units.
var gasEstimates = map[string]uint64{
	"issueCertificate":  285000,
	"revokeCertificate": 52000,
	"verifyCertificate": 21000,
}

// SleepFunc waits for d or until ctx is done, returning ctx.Err() in the
// latter case. Tests substitute a no-op.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnChainRecord is the fabricated verification payload. It is built fresh on
// every call and is not derived from any prior issue call; repeated
// verification of the same identifier returns different hashes.
type OnChainRecord struct {
	CertificateID string      `json:"certificateId"`
	Hash          common.Hash `json:"hash"`
	Timestamp     time.Time   `json:"timestamp"`
	Issuer        string      `json:"issuer"`
	IsValid       bool        `json:"isValid"`
}

// Service is a simulated wallet connection. Construction "connects" and
// fabricates the account address; there is no further state machine.
type Service struct {
	mu      sync.Mutex // guards rnd
	rnd     *rand.Rand
	sleep   SleepFunc
	now     func() time.Time
	logger  logging.Logger
	account common.Address
}

type Option func(*Service)

// WithRand pins the random source.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Service) { s.rnd = rnd }
}

// WithSleep substitutes the delay provider.
func WithSleep(fn SleepFunc) Option {
	return func(s *Service) { s.sleep = fn }
}

// WithClock substitutes the clock used for fabricated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService connects the simulated wallet and fabricates its account address.
func NewService(logger logging.Logger, opts ...Option) *Service {
	s := &Service{
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:  defaultSleep,
		now:    time.Now,
		logger: logger.With("module", "chainsim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.account = s.randomAddress()
	s.logger.Info(context.Background(), "simulated wallet connected", "account", s.account.Hex())
	return s
}

// Account returns the fabricated wallet address assigned at construction.
func (s *Service) Account() common.Address {
	return s.account
}

// IssueCertificate simulates submitting an issuance transaction: an
// artificial delay followed by a fabricated transaction hash. No consensus,
// no confirmation wait.
func (s *Service) IssueCertificate(ctx context.Context, certificateID, dataHash, issuer string) (common.Hash, error) {
	if err := s.sleep(ctx, issueDelay); err != nil {
		return common.Hash{}, err
	}
	tx := s.randomHash()
	s.logger.Info(ctx, "simulated issuance transaction",
		"certificate_id", certificateID, "data_hash", dataHash, "issuer", issuer, "tx", tx.Hex())
	return tx, nil
}

// VerifyCertificate simulates an on-chain lookup. The returned record is
// fabricated fresh on every call.
func (s *Service) VerifyCertificate(ctx context.Context, certificateID string) (*OnChainRecord, error) {
	if err := s.sleep(ctx, verifyDelay); err != nil {
		return nil, err
	}
	rec := &OnChainRecord{
		CertificateID: certificateID,
		Hash:          s.randomHash(),
		Timestamp:     s.now(),
		Issuer:        s.account.Hex(),
		IsValid:       true,
	}
	s.logger.Debug(ctx, "simulated on-chain lookup", "certificate_id", certificateID, "hash", rec.Hash.Hex())
	return rec, nil
}

// GasEstimate returns the fixed stand-in figure for the named contract
// operation, in gas units. Unknown operations get the base transfer cost.
func (s *Service) GasEstimate(operation string) uint64 {
	if v, ok := gasEstimates[operation]; ok {
		return v
	}
	return 21000
}

// CurrentGasPrice returns a random value in a plausible gwei range, in wei.
func (s *Service) CurrentGasPrice() *big.Int {
	s.mu.Lock()
	gwei := minGasPriceGwei + s.rnd.Int63n(maxGasPriceGwei-minGasPriceGwei+1)
	s.mu.Unlock()
	return new(big.Int).Mul(big.NewInt(gwei), big.NewInt(1e9))
}

func (s *Service) randomHash() common.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b [common.HashLength]byte
	s.rnd.Read(b[:])
	return common.BytesToHash(b[:])
}

func (s *Service) randomAddress() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b [common.AddressLength]byte
	s.rnd.Read(b[:])
	return common.BytesToAddress(b[:])
}
