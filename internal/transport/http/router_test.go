package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"walletgate/internal/appstore"
	appstorehandler "walletgate/internal/appstore/handler"
	"walletgate/internal/audit"
	audithandler "walletgate/internal/audit/handler"
	consenthandler "walletgate/internal/consentflow/handler"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/service"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/guardian"
	guardianhandler "walletgate/internal/guardian/handler"
	guardianstore "walletgate/internal/guardian/store"
	jwttoken "walletgate/internal/jwt_token"
	"walletgate/internal/platform/health"
	"walletgate/internal/platform/metrics"
	"walletgate/internal/wallet/memory"
	"walletgate/pkg/testutil"
)

const adminDID = "did:key:z6MkRouterAdmin"

// RouterSuite drives the full HTTP stack against the in-memory wallet.
type RouterSuite struct {
	suite.Suite
	wallet      *memory.Wallet
	jwt         *jwttoken.JWTService
	server      *httptest.Server
	contractURI string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	httpMetrics := metrics.New(reg)

	s.wallet = memory.New()
	s.contractURI = s.wallet.PublishContract(testutil.ExampleDetails(""))
	s.jwt = jwttoken.NewJWTService("router-test-key", "walletgate", "walletgate-api", time.Hour)

	pins := guardian.NewBcryptPinStore(bcrypt.MinCost)
	gate := guardian.New(pins, guardianstore.NewMemory(),
		guardian.WithLogger(logger),
		guardian.WithOnVerified(func(_ context.Context, _ string) { httpMetrics.IncrementGuardianVerifications() }),
	)
	auditor := audit.NewPublisher(audit.NewInMemoryStore())
	consentSvc := service.NewService(s.wallet, s.wallet, auditor, logger, service.WithGate(gate))
	storeSvc := appstore.NewService(s.wallet, logger, appstore.WithAdmins(adminDID), appstore.WithAuditor(auditor))

	router := NewRouter(RouterConfig{
		Logger:      logger,
		Validator:   jwttoken.NewJWTServiceAdapter(s.jwt),
		AdminDIDs:   []string{adminDID},
		Metrics:     httpMetrics,
		Gatherer:    reg,
		Health:      health.New("test"),
		ConsentFlow: consenthandler.New(consentSvc, logger),
		Guardian:    guardianhandler.New(pins, gate, logger),
		AppStore:    appstorehandler.New(storeSvc, logger),
		Audit:       audithandler.New(auditor, logger),
	})
	s.server = httptest.NewServer(router)
}

func (s *RouterSuite) TearDownTest() {
	s.server.Close()
}

func (s *RouterSuite) call(method, path string, user *models.User, body any) (*http.Response, map[string]any) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		token, err := s.jwt.IssueToken(*user)
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		s.Require().NoError(json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (s *RouterSuite) TestPublicRoutes() {
	resp, body := s.call(http.MethodGet, "/health/live", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("alive", body["status"])
	s.NotEmpty(resp.Header.Get("X-Request-ID"))

	resp, _ = s.call(http.MethodGet, "/consent-flow/consents", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.call(http.MethodGet, "/metrics", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *RouterSuite) TestAcceptFlow() {
	holder := testutil.Holder()

	resp, preview := s.call(http.MethodGet, "/consent-flow/preview?uri="+s.contractURI, &holder, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.NotNil(preview["terms"])

	accept := consenthandler.AcceptRequest{
		ContractURI: s.contractURI,
		Terms:       terms.MinimumTerms(testutil.ExampleContract(), holder),
	}
	resp, body := s.call(http.MethodPost, "/consent-flow/consents", &holder, accept)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.NotEmpty(body["termsUri"])

	resp, body = s.call(http.MethodPost, "/consent-flow/consents", &holder, accept)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["alreadyConsented"])

	resp, body = s.call(http.MethodGet, "/consent-flow/consents", &holder, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(body["consents"], 1)

	resp, body = s.call(http.MethodGet, "/audit/events?action="+models.AuditActionConsentAccepted, &holder, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(body["events"], 1)
}

func (s *RouterSuite) TestChildNeedsGuardianPin() {
	child := testutil.Child()
	guardianUser := models.User{DID: testutil.GuardianDID}

	resp, _ := s.call(http.MethodPost, "/guardian/pin", &guardianUser, guardianhandler.SetPinRequest{PIN: "2468"})
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	accept := consenthandler.AcceptRequest{
		ContractURI: s.contractURI,
		Terms:       terms.MinimumTerms(testutil.ExampleContract(), child),
	}
	resp, body := s.call(http.MethodPost, "/consent-flow/consents", &child, accept)
	s.Equal(http.StatusPreconditionRequired, resp.StatusCode)
	s.Equal("guardian_confirmation_required", body["error"])

	accept.GuardianPIN = "0000"
	resp, _ = s.call(http.MethodPost, "/consent-flow/consents", &child, accept)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	accept.GuardianPIN = "2468"
	resp, _ = s.call(http.MethodPost, "/consent-flow/consents", &child, accept)
	s.Equal(http.StatusCreated, resp.StatusCode)

	resp, body = s.call(http.MethodGet, "/guardian/verification", &child, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["verified"])
}

func (s *RouterSuite) TestAdminRoutes() {
	holder := testutil.Holder()
	admin := models.User{DID: adminDID}

	create := appstorehandler.CreateListingRequest{IntegrationID: "integration-1", ListingInput: testutil.ListingInput()}
	resp, listing := s.call(http.MethodPost, "/app-store/listings", &holder, create)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id := listing["listing_id"].(string)

	resp, _ = s.call(http.MethodPut, "/admin/app-store/listings/"+id+"/status", &holder, appstorehandler.StatusRequest{Status: "LISTED"})
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = s.call(http.MethodPut, "/admin/app-store/listings/"+id+"/status", &admin, appstorehandler.StatusRequest{Status: "LISTED"})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.call(http.MethodPost, "/app-store/listings/"+id+"/install", &holder, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp, page := s.call(http.MethodGet, "/app-store/installed", &holder, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(page["records"], 1)
}

func (s *RouterSuite) TestListingOwnership() {
	owner := testutil.Holder()
	stranger := models.User{DID: "did:key:z6MkStranger"}

	create := appstorehandler.CreateListingRequest{IntegrationID: "integration-1", ListingInput: testutil.ListingInput()}
	resp, listing := s.call(http.MethodPost, "/app-store/listings", &owner, create)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(owner.DID, listing["owner_did"])
	path := "/app-store/listings/" + listing["listing_id"].(string)

	resp, _ = s.call(http.MethodGet, path, &stranger, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.call(http.MethodPatch, path, &stranger, map[string]string{"display_name": "Hijacked"})
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.call(http.MethodPost, path+"/submit", &stranger, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.call(http.MethodDelete, path, &stranger, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, body := s.call(http.MethodGet, path, &owner, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(testutil.ListingInput().DisplayName, body["display_name"])
	s.Equal("DRAFT", body["app_listing_status"])

	resp, _ = s.call(http.MethodPost, path+"/submit", &owner, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	admin := models.User{DID: adminDID}
	resp, _ = s.call(http.MethodPut, "/admin"+path+"/status", &admin, appstorehandler.StatusRequest{Status: "LISTED"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.call(http.MethodGet, path, &stranger, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.call(http.MethodPatch, path, &stranger, map[string]string{"display_name": "Hijacked"})
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = s.call(http.MethodDelete, path, &stranger, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = s.call(http.MethodDelete, path, &owner, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *RouterSuite) TestUpdateTermsKeepsRequiredPermissions() {
	holder := testutil.Holder()
	saved := terms.MinimumTerms(testutil.ExampleContract(), holder)

	resp, body := s.call(http.MethodPost, "/consent-flow/consents", &holder, consenthandler.AcceptRequest{
		ContractURI: s.contractURI,
		Terms:       saved,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	termsURI := body["termsUri"].(string)

	edited := terms.Clone(saved)
	achievement := edited.Read.Credentials.Categories["Achievement"]
	achievement.Sharing = false
	achievement.ShareAll = false
	edited.Read.Credentials.Categories["Achievement"] = achievement
	edited.Read.Personal["name"] = ""
	edited.Write.Credentials.Categories["Achievement"] = false

	resp, body = s.call(http.MethodPut, "/consent-flow/terms", &holder, consenthandler.UpdateTermsRequest{
		TermsURI: termsURI,
		Saved:    saved,
		Edited:   edited,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("bad_request", body["error"])

	resp, body = s.call(http.MethodGet, "/consent-flow/consents", &holder, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	consents := body["consents"].([]any)
	s.Require().Len(consents, 1)
	stored := consents[0].(map[string]any)["terms"].(map[string]any)
	s.Equal("Ada Lovelace", stored["read"].(map[string]any)["personal"].(map[string]any)["name"])
}
