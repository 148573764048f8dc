package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/collabhub/internal/config"
	"github.com/yukikurage/collabhub/internal/dto"
	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
	"github.com/yukikurage/collabhub/internal/services"
	"github.com/yukikurage/collabhub/internal/testutil"
)

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	fx     *testutil.Fixtures
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)
	svc := services.New(repository.NewStore(db), services.Options{})
	cfg := &config.Config{AdminUser: "admin", AdminPassword: "s3cret"}

	router, err := NewRouter(cfg, svc, cookie.NewStore([]byte("secret")))
	require.NoError(t, err)

	return &testEnv{
		t:      t,
		db:     db,
		fx:     testutil.NewFixtures(t, db),
		router: router,
	}
}

// client carries the session cookie between requests.
type client struct {
	env     *testEnv
	cookies []*http.Cookie
}

func (e *testEnv) login(user *models.User) *client {
	e.t.Helper()
	c := &client{env: e}

	w := c.postForm("/", url.Values{"user_id": {fmt.Sprint(user.ID)}})
	require.Equal(e.t, http.StatusFound, w.Code)
	require.Equal(e.t, "/feed/", w.Header().Get("Location"))
	return c
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.env.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *client) getJSON(path string, out interface{}) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	w := c.do(req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(c.env.t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *client) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(c.env.t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoginPage(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.User("zed")
	env.fx.User("amy")
	anon := &client{env: env}

	var page dto.LoginPage
	w := anon.getJSON("/", &page)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "amy", page.Users[0].Name)

	// The HTML chooser renders too
	w = anon.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "amy")
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)
	anon := &client{env: env}

	w := anon.postForm("/", url.Values{"user_id": {"999"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = anon.postForm("/", url.Values{"user_id": {"abc"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRedirectWithoutSession(t *testing.T) {
	env := setupTestEnv(t)
	anon := &client{env: env}

	for _, path := range []string{"/feed/", "/researchers/", "/problems/", "/notifications/", "/project/create/", "/profile/1/"} {
		w := anon.getJSON(path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	env := setupTestEnv(t)
	c := env.login(env.fx.User("ada"))

	require.Equal(t, http.StatusOK, c.getJSON("/feed/", nil).Code)

	w := c.getJSON("/logout/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	assert.Equal(t, http.StatusFound, c.getJSON("/feed/", nil).Code)
}

func TestCreateProjectShowsCollaboratorsOnProfile(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.Field("Computer Science")
	sub := env.fx.Subfield("Machine Learning", "Computer Science")
	owner := env.fx.User("owner")
	a := env.fx.User("alice")
	b := env.fx.User("bob")
	c := env.login(owner)

	var form dto.ProjectFormPage
	require.Equal(t, http.StatusOK, c.getJSON("/project/create/", &form).Code)
	assert.Len(t, form.Researchers, 2)

	w := c.postForm("/project/create/", url.Values{
		"title":          {"Medical imaging"},
		"description":    {"CNNs for X-rays"},
		"field":          {"Computer Science"},
		"subfield":       {fmt.Sprint(sub.ID)},
		"vacancy_status": {"true"},
		"collaborators":  {fmt.Sprint(a.ID), "", fmt.Sprint(b.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/profile/%d/", owner.ID), w.Header().Get("Location"))

	var profile dto.ProfilePage
	require.Equal(t, http.StatusOK, c.getJSON(fmt.Sprintf("/profile/%d/", owner.ID), &profile).Code)
	assert.True(t, profile.IsOwnPage)
	require.Len(t, profile.Projects, 1)
	project := profile.Projects[0]
	assert.Equal(t, "Medical imaging", project.Title)
	assert.True(t, project.VacancyStatus)
	names := []string{}
	for _, u := range project.Collaborators {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)

	// The project page redirects to its owner
	w = c.getJSON(fmt.Sprintf("/project/%d/", project.ID), nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/profile/%d/", owner.ID), w.Header().Get("Location"))
}

func TestCreateProjectBadReferences(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.Field("Computer Science")
	sub := env.fx.Subfield("Machine Learning", "Computer Science")
	c := env.login(env.fx.User("owner"))

	w := c.postForm("/project/create/", url.Values{"title": {"x"}, "field": {"Alchemy"}, "subfield": {fmt.Sprint(sub.ID)}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.postForm("/project/create/", url.Values{"title": {"x"}, "field": {"Computer Science"}, "subfield": {fmt.Sprint(sub.ID)}, "collaborators": {"999"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var n int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFeedAndPosts(t *testing.T) {
	env := setupTestEnv(t)
	author := env.fx.User("author")
	reader := env.fx.User("reader")

	c := env.login(author)
	w := c.postForm("/post/create/", url.Values{"content": {"looking for help"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/feed/", w.Header().Get("Location"))

	w = c.postJSON("/post/create/", gin.H{"content": "second"})
	require.Equal(t, http.StatusFound, w.Code)

	r := env.login(reader)
	var feed dto.FeedPage
	require.Equal(t, http.StatusOK, r.getJSON("/feed/", &feed).Code)
	require.Len(t, feed.Posts, 2)
	assert.Equal(t, "second", feed.Posts[0].Content)
	assert.Equal(t, reader.ID, feed.Viewer.ID)

	w = r.postForm(fmt.Sprintf("/post/%d/collaborate/", feed.Posts[1].ID), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/feed/", w.Header().Get("Location"))

	// GET is accepted too, and repeating is a no-op
	w = r.getJSON(fmt.Sprintf("/post/%d/collaborate/", feed.Posts[1].ID), nil)
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.CollaborationRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.Equal(t, http.StatusOK, c.getJSON("/feed/", &feed).Code)
	assert.EqualValues(t, 1, feed.PendingRequests)

	// HTML feed renders
	req := httptest.NewRequest(http.MethodGet, "/feed/", nil)
	w = c.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "looking for help")
}

func TestNonNumericIDsAreNotFound(t *testing.T) {
	env := setupTestEnv(t)
	c := env.login(env.fx.User("ada"))

	for _, path := range []string{"/profile/abc/", "/problem/abc/", "/project/abc/"} {
		assert.Equal(t, http.StatusNotFound, c.getJSON(path, nil).Code, path)
	}
	assert.Equal(t, http.StatusNotFound, c.postForm("/collaboration/abc/accept/", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.postForm("/post/999/collaborate/", nil).Code)
}

func TestAcceptAndRejectRequests(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.Field("Biology")
	sub := env.fx.Subfield("Genetics", "Biology")
	owner := env.fx.User("owner")
	sender := env.fx.User("sender")
	other := env.fx.User("other")
	project := env.fx.Project("CRISPR", owner, sub)

	s := env.login(sender)
	w := s.postForm(fmt.Sprintf("/project/%d/collaborate/", project.ID), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/profile/%d/", owner.ID), w.Header().Get("Location"))

	o := env.login(other)
	require.Equal(t, http.StatusFound, o.postForm(fmt.Sprintf("/project/%d/collaborate/", project.ID), nil).Code)

	c := env.login(owner)
	var notes dto.NotificationsPage
	require.Equal(t, http.StatusOK, c.getJSON("/notifications/", &notes).Code)
	require.Len(t, notes.Pending, 2)
	assert.Equal(t, "CRISPR", notes.Pending[0].Subject)

	var senderReq, otherReq uint64
	for _, r := range notes.Pending {
		if r.SenderID == sender.ID {
			senderReq = r.ID
		} else {
			otherReq = r.ID
		}
	}

	w = c.postForm(fmt.Sprintf("/collaboration/%d/accept/", senderReq), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/notifications/", w.Header().Get("Location"))

	w = c.postForm(fmt.Sprintf("/collaboration/%d/reject/", otherReq), nil)
	require.Equal(t, http.StatusFound, w.Code)

	// Crossing terminal states conflicts
	assert.Equal(t, http.StatusConflict, c.postForm(fmt.Sprintf("/collaboration/%d/reject/", senderReq), nil).Code)
	assert.Equal(t, http.StatusNotFound, c.postForm("/collaboration/999/accept/", nil).Code)

	require.Equal(t, http.StatusOK, c.getJSON("/notifications/", &notes).Code)
	assert.Empty(t, notes.Pending)
	assert.Len(t, notes.Accepted, 1)
	assert.Len(t, notes.Rejected, 1)

	var profile dto.ProfilePage
	require.Equal(t, http.StatusOK, c.getJSON(fmt.Sprintf("/profile/%d/", owner.ID), &profile).Code)
	require.Len(t, profile.Projects, 1)
	require.Len(t, profile.Projects[0].Collaborators, 1)
	assert.Equal(t, sender.ID, profile.Projects[0].Collaborators[0].ID)
}

func TestSearchPages(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.Field("Computer Science")
	ml := env.fx.Subfield("Machine Learning", "Computer Science")
	low := env.fx.Problem("Graphs", models.SeverityLow, ml.ID)
	high := env.fx.Problem("Bias", models.SeverityHigh, ml.ID)
	env.fx.User("ml", func(u *models.User) { u.Field = "Machine Learning"; u.Country = "USA" })
	c := env.login(env.fx.User("viewer"))

	var researchers dto.ResearcherSearchPage
	require.Equal(t, http.StatusOK, c.getJSON("/researchers/?field=machine", &researchers).Code)
	assert.True(t, researchers.Searched)
	require.Len(t, researchers.Researchers, 1)
	assert.Equal(t, "ml", researchers.Researchers[0].Name)

	var problems dto.ProblemSearchPage
	require.Equal(t, http.StatusOK, c.getJSON("/problems/", &problems).Code)
	assert.False(t, problems.Searched)
	assert.Empty(t, problems.Problems)

	require.Equal(t, http.StatusOK, c.getJSON("/problems/?field=Computer+Science&subfield="+fmt.Sprint(ml.ID), &problems).Code)
	assert.True(t, problems.Searched)
	require.Len(t, problems.Problems, 2)
	assert.Equal(t, high.ID, problems.Problems[0].ID)
	assert.Equal(t, low.ID, problems.Problems[1].ID)

	var detail dto.ProblemDetailPage
	require.Equal(t, http.StatusOK, c.getJSON(fmt.Sprintf("/problem/%d/", high.ID), &detail).Code)
	assert.Equal(t, "Computer Science", detail.FieldName)
	assert.Equal(t, http.StatusNotFound, c.getJSON("/problem/999/", nil).Code)

	// HTML pages render
	for _, path := range []string{"/researchers/?country=usa", "/problems/?field=Computer+Science", fmt.Sprintf("/problem/%d/", high.ID), "/notifications/", "/project/create/"} {
		w := c.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestJSONBodiesAcceptNumericIDs(t *testing.T) {
	env := setupTestEnv(t)
	env.fx.Field("Computer Science")
	sub := env.fx.Subfield("Machine Learning", "Computer Science")
	owner := env.fx.User("owner")
	a := env.fx.User("alice")
	b := env.fx.User("bob")

	c := &client{env: env}
	w := c.postJSON("/", gin.H{"user_id": owner.ID})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/feed/", w.Header().Get("Location"))

	w = c.postJSON("/project/create/", gin.H{
		"title":          "Protein folding",
		"field":          "Computer Science",
		"subfield":       sub.ID,
		"vacancy_status": true,
		"collaborators":  []interface{}{a.ID, fmt.Sprint(b.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/profile/%d/", owner.ID), w.Header().Get("Location"))

	var profile dto.ProfilePage
	require.Equal(t, http.StatusOK, c.getJSON(fmt.Sprintf("/profile/%d/", owner.ID), &profile).Code)
	require.Len(t, profile.Projects, 1)
	assert.Equal(t, sub.ID, profile.Projects[0].SubfieldID)
	assert.True(t, profile.Projects[0].VacancyStatus)
	assert.Len(t, profile.Projects[0].Collaborators, 2)

	// Non-numeric ids still answer 404
	assert.Equal(t, http.StatusNotFound, c.postJSON("/project/create/", gin.H{"title": "x", "field": "Computer Science", "subfield": "abc"}).Code)
	assert.Equal(t, http.StatusNotFound, (&client{env: env}).postJSON("/", gin.H{"user_id": 1.5}).Code)
}
