package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRequest_Validate(t *testing.T) {
	valid := IssueRequest{RecipientName: "A", CourseName: "B", IssuerName: "C"}

	tests := []struct {
		name    string
		mutate  func(r *IssueRequest)
		wantErr bool
	}{
		{name: "all required present", mutate: func(r *IssueRequest) {}},
		{name: "missing recipientName", mutate: func(r *IssueRequest) { r.RecipientName = "" }, wantErr: true},
		{name: "missing courseName", mutate: func(r *IssueRequest) { r.CourseName = "" }, wantErr: true},
		{name: "missing issuerName", mutate: func(r *IssueRequest) { r.IssuerName = "" }, wantErr: true},
		{name: "optional fields may be empty", mutate: func(r *IssueRequest) {
			r.RecipientEmail, r.CompletionDate, r.Description = "", "", ""
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSortByIssuedDesc(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	certs := []Certificate{
		{CertificateID: "CERT-2024-AAAAAA", IssuedAt: base},
		{CertificateID: "CERT-2024-CCCCCC", IssuedAt: base.Add(2 * time.Hour)},
		{CertificateID: "CERT-2024-BBBBBB", IssuedAt: base.Add(time.Hour)},
	}

	SortByIssuedDesc(certs)

	assert.Equal(t, "CERT-2024-CCCCCC", certs[0].CertificateID)
	assert.Equal(t, "CERT-2024-BBBBBB", certs[1].CertificateID)
	assert.Equal(t, "CERT-2024-AAAAAA", certs[2].CertificateID)

	for i := 1; i < len(certs); i++ {
		assert.False(t, certs[i].IssuedAt.After(certs[i-1].IssuedAt))
	}
}
