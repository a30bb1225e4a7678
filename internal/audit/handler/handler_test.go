package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/platform/middleware"
)

const holderDID = "did:key:z6MkHolder"

type failingLister struct{}

func (failingLister) List(context.Context, string) ([]audit.Event, error) {
	return nil, errors.New("redis down")
}

type AuditHandlerSuite struct {
	suite.Suite
	store  *audit.InMemoryStore
	router chi.Router
}

func TestAuditHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuditHandlerSuite))
}

func (s *AuditHandlerSuite) SetupTest() {
	s.store = audit.NewInMemoryStore()
	s.router = chi.NewRouter()
	New(audit.NewPublisher(s.store), slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *AuditHandlerSuite) seed(actions ...string) {
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range actions {
		s.Require().NoError(s.store.Append(context.Background(), audit.Event{
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			HolderDID: holderDID,
			Action:    action,
		}))
	}
}

func (s *AuditHandlerSuite) get(router chi.Router, target, did string) (*httptest.ResponseRecorder, EventsResponse) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if did != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), models.User{DID: did}))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body EventsResponse
	if w.Code == http.StatusOK {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func (s *AuditHandlerSuite) TestNewestFirst() {
	s.seed("consent_accepted", "terms_updated", "consent_withdrawn")

	w, body := s.get(s.router, "/audit/events", holderDID)
	s.Equal(http.StatusOK, w.Code)
	s.Require().Len(body.Events, 3)
	s.Equal("consent_withdrawn", body.Events[0].Action)
	s.Equal("consent_accepted", body.Events[2].Action)
}

func (s *AuditHandlerSuite) TestFilterAndLimit() {
	s.seed("terms_updated", "consent_accepted", "terms_updated", "terms_updated")

	_, body := s.get(s.router, "/audit/events?action=terms_updated&limit=2", holderDID)
	s.Require().Len(body.Events, 2)
	for _, e := range body.Events {
		s.Equal("terms_updated", e.Action)
	}
}

func (s *AuditHandlerSuite) TestEmptyTrail() {
	w, body := s.get(s.router, "/audit/events", "did:key:z6MkNobody")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"events":[]}`, w.Body.String())
	s.Empty(body.Events)
}

func (s *AuditHandlerSuite) TestBadLimit() {
	w, _ := s.get(s.router, "/audit/events?limit=0", holderDID)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuditHandlerSuite) TestUnauthenticated() {
	w, _ := s.get(s.router, "/audit/events", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuditHandlerSuite) TestStoreFailure() {
	router := chi.NewRouter()
	New(failingLister{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(router)

	w, _ := s.get(router, "/audit/events", holderDID)
	s.Equal(http.StatusInternalServerError, w.Code)
}
