package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	categorymem "github.com/haqqvault/backend/internal/adapter/memory/category"
	consentmem "github.com/haqqvault/backend/internal/adapter/memory/consent"
	credentialmem "github.com/haqqvault/backend/internal/adapter/memory/credential"
	evidencemem "github.com/haqqvault/backend/internal/adapter/memory/evidence"
	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	tokenmem "github.com/haqqvault/backend/internal/adapter/memory/token"
	topicmem "github.com/haqqvault/backend/internal/adapter/memory/topic"
	usermem "github.com/haqqvault/backend/internal/adapter/memory/user"
	authtoken "github.com/haqqvault/backend/internal/auth"
	"github.com/haqqvault/backend/internal/config"
	adminsvc "github.com/haqqvault/backend/internal/service/admin"
	authsvc "github.com/haqqvault/backend/internal/service/auth"
	categorysvc "github.com/haqqvault/backend/internal/service/category"
	consentsvc "github.com/haqqvault/backend/internal/service/consent"
	evidencesvc "github.com/haqqvault/backend/internal/service/evidence"
	topicsvc "github.com/haqqvault/backend/internal/service/topic"
	"github.com/haqqvault/backend/internal/transport/middleware"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = "*"
	cfg.CORS.AllowedMethods = "GET,POST,PATCH,PUT,DELETE,OPTIONS"
	cfg.CORS.AllowedHeaders = "Authorization,Content-Type"
	cfg.RateLimit.Enabled = false

	hashes := make(map[string]string)
	for email, password := range seed.Passwords() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hashes[email] = string(hash)
	}

	topics := topicmem.NewRepo(seed.Topics(), 0)
	categories := categorymem.NewRepo(seed.Categories(), 0)
	evidence := evidencemem.NewRepo(seed.Evidence(), 0)
	users := usermem.NewRepo(seed.Users(), 0)
	creds := credentialmem.NewRepo(hashes, 0)
	tokens := tokenmem.NewRepo(0)
	consents := consentmem.NewRepo(0)

	tm := authtoken.NewTokenManager("test-secret-key-of-at-least-32-chars!!", "haqqvault", time.Hour)

	topicService := topicsvc.NewService(log, topics, categories, evidence)

	handlers := Handlers{
		Topics:     NewTopicHandler(topicService, log),
		Categories: NewCategoryHandler(categorysvc.NewService(log, categories, topics), topicService, log),
		Evidence:   NewEvidenceHandler(evidencesvc.NewService(log, evidence, topics), log),
		Auth: NewAuthHandler(authsvc.NewService(log, users, creds, tokens, tm, authsvc.Options{
			PasswordHashCost:  bcrypt.MinCost,
			MinPasswordLength: 6,
			ResetTokenTTL:     30 * time.Minute,
			VerifyTokenTTL:    24 * time.Hour,
		}), log),
		Admin:   NewAdminHandler(adminsvc.NewService(log, topics, categories, users), categorysvc.NewService(log, categories, topics), log),
		Consent: NewConsentHandler(consentsvc.NewService(log, consents), log),
		Health:  NewHealthHandler("test"),
	}

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	srv := httptest.NewServer(NewRouter(cfg, log, tm, rl, handlers))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()

	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestRouterListTopics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/topics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page paginatedTopicsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 5, page.Total)
	for _, topic := range page.Data {
		require.Equal(t, "published", topic.Status)
	}
}

func TestRouterTopicDetailIncludesEvidence(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/topics/quran-preservation")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page topicPageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, "quran-preservation", page.Topic.Slug)
	require.Len(t, page.Evidence, 2)
}

func TestRouterCategoryPage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/categories/science")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page categoryPageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, "science", page.Category.Slug)
	// the draft topic in this category stays off the public page
	require.Equal(t, 1, page.Topics.Total)
}

func TestRouterUnknownTopicIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/topics/no-such-slug")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterLoginAndDashboard(t *testing.T) {
	srv := newTestServer(t)

	// anonymous callers are turned away
	resp, err := http.Get(srv.URL + "/api/admin/dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, srv, "admin@haqqvault.com", "admin123")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dash dashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dash))
	require.Equal(t, len(seed.Topics()), dash.Topics.Total)
	require.Len(t, dash.PendingReview, 1)
}

func TestRouterDashboardForbiddenForMembers(t *testing.T) {
	srv := newTestServer(t)

	token := login(t, srv, "user@example.com", "user123")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouterLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"email":"admin@haqqvault.com","password":"nope"}`)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.Equal(t, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", errResp.Error)
}

func TestRouterConsentRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp, err := client.Get(srv.URL + "/api/consent")
	require.NoError(t, err)
	var first consentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp.Body.Close()
	require.True(t, first.Necessary)
	require.False(t, first.Analytics)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/consent",
		strings.NewReader(`{"necessary":false,"analytics":true}`))
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	var saved consentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	resp.Body.Close()
	require.True(t, saved.Necessary, "necessary consent cannot be opted out")
	require.True(t, saved.Analytics)
	require.NotNil(t, saved.ConsentedAt)

	resp, err = client.Get(srv.URL + "/api/consent")
	require.NoError(t, err)
	var again consentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&again))
	resp.Body.Close()
	require.True(t, again.Analytics)
}
