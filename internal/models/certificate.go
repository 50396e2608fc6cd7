// Package models defines the certificate record shared by the client-local
// store and the server store. The two stores are independent but keep the
// same schema.
package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/certchain/internal/common"
)

// Certificate is the persisted unit of data representing one issued
// certificate. Records are immutable after creation: no operation updates or
// deletes them, and IsValid is never flipped.
type Certificate struct {
	RecordID       string    `json:"recordId"`
	CertificateID  string    `json:"certificateId"`
	RecipientName  string    `json:"recipientName"`
	RecipientEmail string    `json:"recipientEmail,omitempty"`
	CourseName     string    `json:"courseName"`
	IssuerName     string    `json:"issuerName"`
	CompletionDate string    `json:"completionDate,omitempty"`
	Description    string    `json:"description,omitempty"`
	IssuedAt       time.Time `json:"issuedAt"`
	BlockchainHash string    `json:"blockchainHash"`
	IsValid        bool      `json:"isValid"`
}

// IssueRequest carries the user-supplied fields of an issuance.
type IssueRequest struct {
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail,omitempty"`
	CourseName     string `json:"courseName"`
	IssuerName     string `json:"issuerName"`
	CompletionDate string `json:"completionDate,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Validate checks the required fields. It runs before any I/O so a failed
// issuance leaves both stores untouched.
func (r IssueRequest) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"recipientName", r.RecipientName},
		{"courseName", r.CourseName},
		{"issuerName", r.IssuerName},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, f.name)
		}
	}
	return nil
}

// HealthStatus is the liveness probe response. Status is "ok" from the
// remote API or "local-fallback" when the probe failed.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SortByIssuedDesc orders certificates newest first. Presentation contract
// for listings; the stores themselves hold insertion order.
func SortByIssuedDesc(certs []Certificate) {
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[i].IssuedAt.After(certs[j].IssuedAt)
	})
}
