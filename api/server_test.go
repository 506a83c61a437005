package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db, err := database.Open(map[string]string{"DB_TYPE": "sqlite", "SQLITE_PATH": ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return newRouter(database.New(db), withConfig(map[string]string{"ACCEPTED_ORIGINS": "https://example.com"}))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestCreateProjectRejectsEndBeforeStart(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/project",
		`{"name":"Site","short_description":"This site","start_date":"2020-01-01","end_date":"2019-01-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	errResp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "end_date", errResp.Field)
	assert.Equal(t, services.EndBeforeStartMessage, errResp.Details)

	rec = do(t, router, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[ProjectCollection](t, rec).Total)
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/sub-category", `{"name":"Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sub := decode[map[string]any](t, rec)
	assert.Equal(t, "go", sub["slug"])

	rec = do(t, router, http.MethodPost, "/project",
		`{"name":"Site","short_description":"This site","start_date":"2020-01-01","end_date":"2021-01-01",
		  "repository_url":"https://github.com/me/site","repository_url_is_public":false,
		  "live_url":"https://me.dev","sub_category_ids":["`+sub["id"].(string)+`"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	project := decode[map[string]any](t, rec)
	id := project["id"].(string)
	assert.Equal(t, true, project["is_public"], "is_public defaults to true")
	assert.Len(t, project["sub_categories"], 1)

	rec = do(t, router, http.MethodGet, "/projects?public=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	public := decode[ProjectCollection](t, rec)
	require.Len(t, public.Projects, 1)
	assert.Nil(t, public.Projects[0].RepositoryURL)
	require.NotNil(t, public.Projects[0].LiveURL)

	rec = do(t, router, http.MethodGet, "/sub-category/"+sub["id"].(string)+"/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[ProjectCollection](t, rec).Total)

	rec = do(t, router, http.MethodPut, "/project/"+id,
		`{"name":"Site","short_description":"changed","start_date":"2020-01-01","end_date":"2019-06-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/project/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This site", decode[map[string]any](t, rec)["short_description"])

	rec = do(t, router, http.MethodDelete, "/project/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodGet, "/project/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdering(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"name":"five","description":"d","url":"https://a.test/5","weight":5,"date_posted":"2021-01-01"}`,
		`{"name":"one","description":"d","url":"https://a.test/1","weight":1,"date_posted":"2021-01-01"}`,
		`{"name":"three","description":"d","url":"https://a.test/3","weight":3,"date_posted":"2021-01-01"}`,
	} {
		rec := do(t, router, http.MethodPost, "/article", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, router, http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []string
	for _, a := range decode[ArticleCollection](t, rec).Articles {
		got = append(got, a.Name)
	}
	assert.Equal(t, []string{"one", "three", "five"}, got)

	rec = do(t, router, http.MethodGet, "/articles?order=-weight", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "five", decode[ArticleCollection](t, rec).Articles[0].Name)

	rec = do(t, router, http.MethodGet, "/articles?order=password", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "order", decode[ErrorResponse](t, rec).Field)
}

func TestJobEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/company", `{"name":"Acme","logo":"acme.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	companyID := decode[map[string]any](t, rec)["id"].(string)

	rec = do(t, router, http.MethodPost, "/job", `{"title":"Engineer","company_id":"`+companyID+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "start_date", decode[ErrorResponse](t, rec).Field)

	rec = do(t, router, http.MethodPost, "/job", `{"title":"Engineer","level":"Intern","company_id":"`+companyID+`","start_date":"2020-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	job := decode[map[string]any](t, rec)
	assert.Equal(t, "Intern", job["level"])

	rec = do(t, router, http.MethodPost, "/job", `{"title":"Engineer","level":"Boss","company_id":"`+companyID+`","start_date":"2020-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/company/"+companyID+"/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[JobCollection](t, rec).Total)

	rec = do(t, router, http.MethodDelete, "/company/"+companyID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodGet, "/jobs", "")
	assert.Equal(t, 0, decode[JobCollection](t, rec).Total)
}

func TestRequestErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/task/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/task/6f1c1f0e-7a53-4a3e-9b59-0c1e8d3c1b11", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/task", `{"task":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payload", decode[ErrorResponse](t, rec).Field)

	rec = do(t, router, http.MethodPost, "/category", `{"name":"Software"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, router, http.MethodPost, "/category", `{"name":"Software"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/projects?public=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortfolioAndHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/portfolio", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	overview := decode[map[string]any](t, rec)
	assert.Contains(t, overview, "projects")
	assert.Contains(t, overview, "jobs")

	rec = do(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
