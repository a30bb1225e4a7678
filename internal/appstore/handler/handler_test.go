package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"walletgate/internal/appstore/handler/mocks"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/platform/middleware"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
	"walletgate/pkg/testutil"
)

type AppStoreHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestAppStoreHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppStoreHandlerSuite))
}

func (s *AppStoreHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Register(s.router)
	h.RegisterAdmin(s.router)
}

func (s *AppStoreHandlerSuite) do(method, target, body string, user models.User) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user.DID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AppStoreHandlerSuite) TestBrowseOnlyListed() {
	s.service.EXPECT().Browse(gomock.Any(), wallet.ListingQuery{Limit: 10, Cursor: "20", Status: wallet.ListingListed}).
		Return(wallet.ListingPage{Records: []wallet.Listing{}}, nil)

	w := s.do(http.MethodGet, "/app-store/listings?limit=10&cursor=20&status=DRAFT", "", models.User{})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"records":[],"hasMore":false}`, w.Body.String())
}

func (s *AppStoreHandlerSuite) TestBrowseRejectsBadLimit() {
	w := s.do(http.MethodGet, "/app-store/listings?limit=ten", "", models.User{})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AppStoreHandlerSuite) TestCreate() {
	s.Run("201 with integration id", func() {
		s.service.EXPECT().CreateListing(gomock.Any(), testutil.Holder(), "integration-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.User, _ string, in wallet.ListingInput) (wallet.Listing, error) {
				s.Equal("Study Buddy", in.DisplayName)
				return wallet.Listing{ListingInput: in, ListingID: "l-1", Status: wallet.ListingDraft}, nil
			})

		w := s.do(http.MethodPost, "/app-store/listings",
			`{"integration_id":"integration-1","display_name":"Study Buddy","tagline":"t","full_description":"d","icon_url":"https://x.example/i.png","launch_type":"DIRECT_LINK"}`,
			testutil.Holder())
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"app_listing_status":"DRAFT"`)
	})

	s.Run("401 anonymous", func() {
		w := s.do(http.MethodPost, "/app-store/listings", `{}`, models.User{})
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("400 validation", func() {
		s.service.EXPECT().CreateListing(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(wallet.Listing{}, dErrors.New(dErrors.CodeValidation, "display_name is required"))

		w := s.do(http.MethodPost, "/app-store/listings", `{"integration_id":"integration-1"}`, testutil.Holder())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AppStoreHandlerSuite) TestListingCallsCarryActor() {
	s.Run("get", func() {
		s.service.EXPECT().Get(gomock.Any(), testutil.Holder(), "l-1").
			Return(wallet.Listing{}, dErrors.New(dErrors.CodeNotFound, "listing not found"))
		w := s.do(http.MethodGet, "/app-store/listings/l-1", "", testutil.Holder())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("update", func() {
		s.service.EXPECT().UpdateListing(gomock.Any(), testutil.Holder(), "l-1", gomock.Any()).
			Return(wallet.Listing{}, dErrors.New(dErrors.CodeForbidden, "listing belongs to another developer"))
		w := s.do(http.MethodPatch, "/app-store/listings/l-1", `{"display_name":"Other"}`, testutil.Holder())
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("delete", func() {
		s.service.EXPECT().DeleteListing(gomock.Any(), testutil.Holder(), "l-1").Return(nil)
		w := s.do(http.MethodDelete, "/app-store/listings/l-1", "", testutil.Holder())
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("401 anonymous get", func() {
		w := s.do(http.MethodGet, "/app-store/listings/l-1", "", models.User{})
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AppStoreHandlerSuite) TestSubmit() {
	s.service.EXPECT().SubmitForReview(gomock.Any(), testutil.Holder(), "l-1").
		Return(wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "only draft listings can be submitted for review"))

	w := s.do(http.MethodPost, "/app-store/listings/l-1/submit", "", testutil.Holder())
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AppStoreHandlerSuite) TestInstall() {
	s.Run("204", func() {
		s.service.EXPECT().Install(gomock.Any(), testutil.Holder(), "l-1").Return(nil)
		w := s.do(http.MethodPost, "/app-store/listings/l-1/install", "", testutil.Holder())
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("409 already installed", func() {
		s.service.EXPECT().Install(gomock.Any(), testutil.Holder(), "l-1").
			Return(dErrors.New(dErrors.CodeConflict, "app already installed"))
		w := s.do(http.MethodPost, "/app-store/listings/l-1/install", "", testutil.Holder())
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("uninstall", func() {
		s.service.EXPECT().Uninstall(gomock.Any(), testutil.Holder(), "l-1").Return(nil)
		w := s.do(http.MethodDelete, "/app-store/listings/l-1/install", "", testutil.Holder())
		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *AppStoreHandlerSuite) TestAdminStatus() {
	admin := models.User{DID: "did:key:z6MkAdmin"}
	s.service.EXPECT().AdminUpdateStatus(gomock.Any(), admin, "l-1", wallet.ListingListed).
		Return(wallet.Listing{ListingID: "l-1", Status: wallet.ListingListed}, nil)

	w := s.do(http.MethodPut, "/admin/app-store/listings/l-1/status", `{"status":"LISTED"}`, admin)
	s.Equal(http.StatusOK, w.Code)

	s.service.EXPECT().AdminUpdatePromotion(gomock.Any(), testutil.Holder(), "l-1", wallet.PromotionDemoted).
		Return(wallet.Listing{}, dErrors.New(dErrors.CodeForbidden, "admin access required"))

	w = s.do(http.MethodPut, "/admin/app-store/listings/l-1/promotion", `{"promotion_level":"DEMOTED"}`, testutil.Holder())
	s.Equal(http.StatusForbidden, w.Code)
}
