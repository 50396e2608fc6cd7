package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/models"
	"github.com/dmitrijs2005/certchain/internal/server/certificates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*RESTServer, *certificates.InMemoryRepository) {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	repo := certificates.NewInMemoryRepository()
	gen := certgen.NewWithSource(rand.New(rand.NewSource(1)), time.Now)
	svc := certificates.NewService(repo, gen, logger)

	return NewRESTServer(":0", logger, svc), repo
}

func doRequest(t *testing.T, s *RESTServer, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	rr := httptest.NewRecorder()
	s.router().ServeHTTP(rr, req)
	return rr
}

func TestIssueHandler_Created(t *testing.T) {
	s, repo := newTestServer(t)

	rr := doRequest(t, s, http.MethodPost, "/certificates", models.IssueRequest{
		RecipientName: "Alice", CourseName: "Go", IssuerName: "Acme",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Regexp(t, `^CERT-\d{4}-[0-9A-Z]{6}$`, resp["certificateId"])

	stored, err := repo.GetByCertificateID(context.Background(), resp["certificateId"])
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.RecipientName)
}

func TestIssueHandler_ValidationError(t *testing.T) {
	s, repo := newTestServer(t)

	rr := doRequest(t, s, http.MethodPost, "/certificates", models.IssueRequest{CourseName: "Go"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "recipientName")

	certs, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestIssueHandler_MalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader([]byte(`{broken`)))
	rr := httptest.NewRecorder()
	s.router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyHandler_Found(t *testing.T) {
	s, repo := newTestServer(t)

	rec := models.Certificate{
		RecordID:      "r1",
		CertificateID: "CERT-2024-ABC123",
		RecipientName: "Alice",
		IssuedAt:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		IsValid:       true,
	}
	require.NoError(t, repo.Insert(context.Background(), &rec))

	rr := doRequest(t, s, http.MethodGet, "/certificates/verify/CERT-2024-ABC123", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Certificate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "CERT-2024-ABC123", got.CertificateID)
	assert.True(t, got.IsValid)
}

func TestVerifyHandler_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/certificates/verify/CERT-2024-NOPE00", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "not found")
}

func TestListHandler_SortedNewestFirst(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, &models.Certificate{RecordID: "1", CertificateID: "CERT-2024-OLD000", IssuedAt: base}))
	require.NoError(t, repo.Insert(ctx, &models.Certificate{RecordID: "2", CertificateID: "CERT-2024-NEW000", IssuedAt: base.Add(time.Hour)}))

	rr := doRequest(t, s, http.MethodGet, "/certificates", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Certificate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "CERT-2024-NEW000", got[0].CertificateID)
}

func TestListHandler_EmptyIsJSONArray(t *testing.T) {
	s, _ := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/certificates", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	s, _ := newTestServer(t)

	rr := doRequest(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var hs models.HealthStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hs))
	assert.Equal(t, "ok", hs.Status)
	assert.False(t, hs.Timestamp.IsZero())
}
