package history_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"Strut/internal/history"
	"Strut/internal/repo"
)

type fakeRepo struct {
	nextID int
	calcs  map[int][]repo.Calculation // keyed by user
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, calcs: map[int][]repo.Calculation{}}
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (f *fakeRepo) GetBylogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error) {
	id := f.nextID
	f.nextID++
	f.calcs[userID] = append(f.calcs[userID], repo.Calculation{
		ID: id, Tool: tool, Input: input, Result: result, CreatedAt: time.Now(),
	})
	return id, nil
}

func (f *fakeRepo) ListCalculations(ctx context.Context, userID int) ([]repo.Calculation, error) {
	return f.calcs[userID], nil
}

func (f *fakeRepo) GetCalculation(ctx context.Context, userID, id int) (repo.Calculation, error) {
	for _, c := range f.calcs[userID] {
		if c.ID == id {
			return c, nil
		}
	}
	return repo.Calculation{}, sql.ErrNoRows
}

func asUser(req *http.Request, id int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), "userID", id))
}

func TestSaveListGet(t *testing.T) {
	h := &history.HistoryHandler{Repo: newFakeRepo()}

	body := `{"tool":"column","input":{"length_m":2},"result":{"safety_factor":4.84}}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/history", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Equal(t, 1, created["id"])

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/history", nil), 7)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []repo.Calculation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Equal(t, "column", list[0].Tool)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/history/1", nil), 7)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var calc repo.Calculation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&calc))
	require.Equal(t, 1, calc.ID)
	require.JSONEq(t, `{"length_m":2}`, string(calc.Input))
}

func TestListOtherUserEmpty(t *testing.T) {
	fake := newFakeRepo()
	h := &history.HistoryHandler{Repo: fake}

	body := `{"tool":"column","input":{},"result":{}}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/history", strings.NewReader(body)), 7)
	h.Save(httptest.NewRecorder(), req)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/history", nil), 8)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetNotFound(t *testing.T) {
	h := &history.HistoryHandler{Repo: newFakeRepo()}

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/user/history/99", nil), 7)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnauthorized(t *testing.T) {
	h := &history.HistoryHandler{Repo: newFakeRepo()}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/user/history", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPost, "/api/user/history", strings.NewReader("{}")))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaveRejectsIncomplete(t *testing.T) {
	h := &history.HistoryHandler{Repo: newFakeRepo()}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/history", strings.NewReader(`{"tool":"column"}`)), 7)
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
