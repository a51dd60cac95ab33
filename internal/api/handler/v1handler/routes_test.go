package v1handler_test

import (
	"catconnect/internal/api/handler/v1handler"
	"catconnect/internal/assistant"
	"catconnect/internal/auth"
	"catconnect/internal/marketplace"
	mockmarketplace "catconnect/internal/marketplace/mock"
	"catconnect/internal/tasks"
	"catconnect/pkg/authz"
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type apiFixture struct {
	handler http.Handler
	storage *mockstorage.MockStorage
	issuer  *auth.Issuer
}

func newAPI(t *testing.T) apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	dispatcher := mockmarketplace.NewMockTaskDispatcher(ctrl)
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(tasks.RouteQueue).AnyTimes()

	privPEM, pubPEM := genRSAKeys(t)
	issuer := newIssuerForTest(t, privPEM)
	enforcer, err := authz.New()
	require.NoError(t, err)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM, Issuer: "catconnect"}, enforcer, store)
	require.NoError(t, err)

	h := v1handler.New(v1handler.Deps{
		Marketplace: marketplace.New(marketplace.Deps{Storage: store, Tasks: dispatcher},
			marketplace.Options{BcryptCost: bcrypt.MinCost, DefaultPageSize: 20}),
		Assistant: assistant.New(assistant.Deps{Jobs: store}, assistant.Options{}),
		Issuer:    issuer,
	})

	return apiFixture{
		handler: h.Routes(sec, v1handler.RouteOptions{AuthRequests: 2, AuthWindow: time.Minute}),
		storage: store,
		issuer:  issuer,
	}
}

func (f apiFixture) token(t *testing.T, p domain.Principal) string {
	t.Helper()
	tkn, err := f.issuer.Issue(p)
	require.NoError(t, err)

	return "Bearer " + tkn.AccessToken
}

// activeAccount makes the account behind p pass authorization.
func (f apiFixture) activeAccount(p domain.Principal) {
	f.storage.EXPECT().UserByID(gomock.Any(), p.UserID).
		Return(&domain.User{ID: p.UserID, Role: p.Role, Active: true}, nil).AnyTimes()
}

func (f apiFixture) do(t *testing.T, method, path, authorization, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestRoutes_LoginThenProfile(t *testing.T) {
	f := newAPI(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           domain.NewID[domain.UserID](),
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Name:         "Maria",
		Role:         domain.RoleJobSeeker,
		Active:       true,
	}
	f.storage.EXPECT().UserByEmail(gomock.Any(), "maria@example.com").Return(user, nil)
	// once to authorize the request and once to load the profile
	f.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil).Times(2)

	rec := f.do(t, http.MethodPost, "/auth/login", "", `{"email":" Maria@Example.com ","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decodeBody[v1handler.SessionResponse](t, rec)
	require.Equal(t, user.ID, session.User.ID)
	require.Equal(t, "Bearer", session.Token.TokenType)
	require.NotContains(t, rec.Body.String(), "passwordHash")

	rec = f.do(t, http.MethodGet, "/me", "Bearer "+session.Token.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Maria", decodeBody[domain.User](t, rec).Name)
}

func TestRoutes_LoginRateLimited(t *testing.T) {
	f := newAPI(t)
	f.storage.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	for range 2 {
		rec := f.do(t, http.MethodPost, "/auth/login", "", `{"email":"nobody@example.com","password":"whatever1"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "invalid email or password", decodeBody[v1handler.ErrorResponse](t, rec).Message)
	}

	rec := f.do(t, http.MethodPost, "/auth/login", "", `{"email":"nobody@example.com","password":"whatever1"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "RATE_LIMITED", decodeBody[v1handler.ErrorResponse](t, rec).Code)
}

func TestRoutes_ListBusinesses(t *testing.T) {
	f := newAPI(t)
	next := storage.Cursor{CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), ID: uuid.New()}
	f.storage.EXPECT().ListBusinesses(gomock.Any(),
		storage.BusinessFilter{Status: domain.BusinessStatusApproved, Municipality: "Virac"},
		storage.PageQuery{Limit: 5}).
		Return(storage.Page[domain.Business]{
			Items:      []domain.Business{{ID: domain.NewID[domain.BusinessID](), Name: "Bato Bakery"}},
			NextCursor: &next,
		}, nil)

	// a requested status is ignored for anonymous callers
	rec := f.do(t, http.MethodGet, "/businesses?municipality=virac&status=pending&limit=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[v1handler.ListResponse[domain.Business]](t, rec)
	require.Len(t, res.Items, 1)
	require.Equal(t, "Bato Bakery", res.Items[0].Name)
	require.NotNil(t, res.NextCursor)
	require.Equal(t, "2026-03-01T08:00:00Z_"+next.ID.String(), *res.NextCursor)
}

func TestRoutes_BadRequests(t *testing.T) {
	f := newAPI(t)

	tests := []struct {
		name, method, path, body string
		want                     int
		message                  string
	}{
		{"invalid id", http.MethodGet, "/businesses/not-a-uuid", "", http.StatusBadRequest, "invalid businessID"},
		{"invalid limit", http.MethodGet, "/jobs?limit=0", "", http.StatusBadRequest, "limit must be a positive integer"},
		{"unknown route", http.MethodGet, "/nowhere", "", http.StatusNotFound, "route not found"},
		{"short location query", http.MethodGet, "/locations/suggest?q=v", "", http.StatusBadRequest, "q must be at least 2 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.path, "", tt.body)
			require.Equal(t, tt.want, rec.Code)
			require.Equal(t, tt.message, decodeBody[v1handler.ErrorResponse](t, rec).Message)
		})
	}
}

func TestRoutes_RolesAreEnforced(t *testing.T) {
	f := newAPI(t)
	seeker := f.token(t, domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleJobSeeker})

	rec := f.do(t, http.MethodPost, "/businesses", seeker, `{"name":"Shop"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin/businesses/pending", seeker, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/assistant/chat", "", `{"message":"hi"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_NotificationsMarkRead(t *testing.T) {
	f := newAPI(t)
	p := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleServiceProvider}
	bearer := f.token(t, p)
	f.activeAccount(p)
	id := domain.NewID[domain.NotificationID]()

	rec := f.do(t, http.MethodPost, "/notifications/read", bearer, `{"ids":["`+id.String()+`"],"all":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f.storage.EXPECT().MarkNotificationsRead(gomock.Any(), p.UserID, id).Return(int64(1), nil)
	rec = f.do(t, http.MethodPost, "/notifications/read", bearer, `{"ids":["`+id.String()+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, int64(1), decodeBody[v1handler.CountResponse](t, rec).Count)
}

func TestRoutes_SuggestLocationsWithoutGeocoder(t *testing.T) {
	f := newAPI(t)

	rec := f.do(t, http.MethodGet, "/locations/suggest?q=vi", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[[]domain.LocationSuggestion](t, rec)
	require.Equal(t, []domain.LocationSuggestion{
		{Label: "Viga, Catanduanes", Source: assistant.SourceMunicipality},
		{Label: "Virac, Catanduanes", Source: assistant.SourceMunicipality},
	}, res)
}

func TestRoutes_ChatWithoutLanguageModel(t *testing.T) {
	f := newAPI(t)
	p := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleJobSeeker}
	bearer := f.token(t, p)
	f.activeAccount(p)

	rec := f.do(t, http.MethodPost, "/assistant/chat", bearer, `{"message":"Where can I find work in Virac?"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "UNAVAILABLE", decodeBody[v1handler.ErrorResponse](t, rec).Code)
}

func TestRoutes_DeactivatedAccountLosesAccess(t *testing.T) {
	f := newAPI(t)
	admin := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleAdmin}
	seeker := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleJobSeeker}
	seekerBearer := f.token(t, seeker)
	f.activeAccount(admin)

	account := &domain.User{ID: seeker.UserID, Role: seeker.Role, Active: true}
	f.storage.EXPECT().UserByID(gomock.Any(), seeker.UserID).
		DoAndReturn(func(context.Context, domain.UserID) (*domain.User, error) {
			u := *account

			return &u, nil
		}).AnyTimes()
	f.storage.EXPECT().UnreadNotificationCount(gomock.Any(), seeker.UserID).Return(int64(0), nil)

	rec := f.do(t, http.MethodGet, "/notifications/unread-count", seekerBearer, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	inactive := false
	f.storage.EXPECT().UpdateUser(gomock.Any(), seeker.UserID, storage.UserUpdates{Active: &inactive}).
		DoAndReturn(func(context.Context, domain.UserID, storage.UserUpdates) (*domain.User, error) {
			account.Active = false
			u := *account

			return &u, nil
		})
	rec = f.do(t, http.MethodPost, "/admin/users/"+seeker.UserID.String()+"/active", f.token(t, admin),
		`{"active":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// the token issued before deactivation is still valid but no longer accepted
	rec = f.do(t, http.MethodGet, "/notifications/unread-count", seekerBearer, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "account is deactivated", decodeBody[v1handler.ErrorResponse](t, rec).Message)
}

func TestRoutes_DeletedAccountIsUnauthorized(t *testing.T) {
	f := newAPI(t)
	p := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleBusinessOwner}
	f.storage.EXPECT().UserByID(gomock.Any(), p.UserID).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/notifications", f.token(t, p), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "account no longer exists", decodeBody[v1handler.ErrorResponse](t, rec).Message)
}
