package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/certificates", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.IssueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Alice", req.RecipientName)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"certificateId": "CERT-2024-REMOTE"})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	id, err := c.Issue(context.Background(), models.IssueRequest{RecipientName: "Alice", CourseName: "Go", IssuerName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "CERT-2024-REMOTE", id)
}

func TestIssue_ServerError_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	_, err := c.Issue(context.Background(), models.IssueRequest{RecipientName: "A"})
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestIssue_ConnectionRefused_MapsToUnavailable(t *testing.T) {
	// Nothing listens here.
	c := NewHTTPClient("http://127.0.0.1:1")
	_, err := c.Issue(context.Background(), models.IssueRequest{RecipientName: "A"})
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestVerify_Success(t *testing.T) {
	issued := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/certificates/verify/CERT-2024-ABC123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Certificate{
			RecordID:      "r1",
			CertificateID: "CERT-2024-ABC123",
			RecipientName: "Alice",
			IssuedAt:      issued,
			IsValid:       true,
		})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	cert, err := c.Verify(context.Background(), "CERT-2024-ABC123")
	require.NoError(t, err)
	assert.Equal(t, "CERT-2024-ABC123", cert.CertificateID)
	assert.True(t, cert.IssuedAt.Equal(issued))
	assert.True(t, cert.IsValid)
}

func TestVerify_NotFound_MapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	_, err := c.Verify(context.Background(), "CERT-2024-NOPE00")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/certificates", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Certificate{
			{CertificateID: "CERT-2024-AAAAAA"},
			{CertificateID: "CERT-2024-BBBBBB"},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	certs, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, certs, 2)
}

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.HealthStatus{Status: "ok", Timestamp: time.Now()})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	hs, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", hs.Status)
}

func TestHealth_Down_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestVerify_MalformedJSON_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	_, err := c.Verify(context.Background(), "CERT-2024-ABC123")
	require.ErrorIs(t, err, common.ErrUnavailable)
}
