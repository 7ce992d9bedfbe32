package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzukov/web-api/modules/users"
	"github.com/mzukov/web-api/modules/users/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	users.New(users.Config{}).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func createUser(t *testing.T, srv *httptest.Server, login string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{"login": login})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestCreateUser(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{"login": "abc123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "/users/"+created.ID, resp.Header.Get("Location"))
}

func TestCreateUser_InvalidLogin(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{"login": "not valid!"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fields map[string][]string
	decodeBody(t, resp, &fields)
	assert.Equal(t, []string{"Invalid Login"}, fields["login"])
}

func TestGetUser(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp := doJSON(t, http.MethodGet, srv.URL+"/users/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		ID                string  `json:"id"`
		Login             string  `json:"login"`
		FirstName         string  `json:"firstName"`
		LastName          string  `json:"lastName"`
		GamesPlayed       int     `json:"gamesPlayed"`
		CurrentActivityID *string `json:"currentActivityId"`
	}
	decodeBody(t, resp, &user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "abc123", user.Login)
	assert.Empty(t, user.FirstName)
	assert.Empty(t, user.LastName)
	assert.Zero(t, user.GamesPlayed)
	assert.Nil(t, user.CurrentActivityID)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/users/"+domain.NewUserID().String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHeadUser(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp, err := http.Head(srv.URL + "/users/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, err = http.Head(srv.URL + "/users/" + domain.NewUserID().String())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReplaceUser_InsertsWhenAbsent(t *testing.T) {
	srv := newTestServer(t)
	id := domain.NewUserID().String()

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/"+id,
		map[string]string{"firstName": "John", "lastName": "Doe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/users/"+id, resp.Header.Get("Location"))

	get := doJSON(t, http.MethodGet, srv.URL+"/users/"+id, nil)
	require.Equal(t, http.StatusOK, get.StatusCode)

	var user struct {
		Login     string `json:"login"`
		FirstName string `json:"firstName"`
	}
	decodeBody(t, get, &user)
	assert.Empty(t, user.Login, "replace-inserted users have no login")
	assert.Equal(t, "John", user.FirstName)
}

func TestReplaceUser_UpdatesWhenPresent(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/"+id,
		map[string]string{"firstName": "John", "lastName": "Doe"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	get := doJSON(t, http.MethodGet, srv.URL+"/users/"+id, nil)
	var user struct {
		Login     string `json:"login"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	decodeBody(t, get, &user)
	assert.Equal(t, "abc123", user.Login, "login survives replace")
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
}

func TestReplaceUser_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/not-a-uuid",
		map[string]string{"firstName": "John", "lastName": "Doe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReplaceUser_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/users/"+domain.NewUserID().String(),
		map[string]string{"firstName": "", "lastName": ""})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fields map[string][]string
	decodeBody(t, resp, &fields)
	assert.Equal(t, []string{"Invalid First Name"}, fields["firstName"])
	assert.Equal(t, []string{"Invalid Last Name"}, fields["lastName"])
}

func TestPatchUser(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	put := doJSON(t, http.MethodPut, srv.URL+"/users/"+id,
		map[string]string{"firstName": "John", "lastName": "Doe"})
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/users/"+id, []map[string]any{
		{"op": "replace", "path": "/firstName", "value": "Jane"},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	get := doJSON(t, http.MethodGet, srv.URL+"/users/"+id, nil)
	var user struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	decodeBody(t, get, &user)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
}

func TestPatchUser_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/users/"+domain.NewUserID().String(),
		[]map[string]any{{"op": "replace", "path": "/firstName", "value": "Jane"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A malformed id cannot address a resource, so it also reads as 404.
	resp = doJSON(t, http.MethodPatch, srv.URL+"/users/not-a-uuid",
		[]map[string]any{{"op": "replace", "path": "/firstName", "value": "Jane"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatchUser_FailedOperation(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp := doJSON(t, http.MethodPatch, srv.URL+"/users/"+id, []map[string]any{
		{"op": "test", "path": "/firstName", "value": "NotThere"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fields map[string][]string
	decodeBody(t, resp, &fields)
	assert.NotEmpty(t, fields["firstName"])
}

func TestPatchUser_MalformedBody(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp := doJSON(t, http.MethodPatch, srv.URL+"/users/"+id, map[string]string{"op": "replace"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	srv := newTestServer(t)
	id := createUser(t, srv, "abc123")

	resp := doJSON(t, http.MethodDelete, srv.URL+"/users/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	get := doJSON(t, http.MethodGet, srv.URL+"/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, get.StatusCode)

	again := doJSON(t, http.MethodDelete, srv.URL+"/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestListUsers_Pagination(t *testing.T) {
	srv := newTestServer(t)
	for _, login := range []string{"user1", "user2", "user3", "user4", "user5"} {
		createUser(t, srv, login)
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/users?pageNumber=2&pageSize=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page []struct {
		Login string `json:"login"`
	}
	decodeBody(t, resp, &page)
	require.Len(t, page, 2)
	assert.Equal(t, "user3", page[0].Login)
	assert.Equal(t, "user4", page[1].Login)

	header := resp.Header.Get("X-Pagination")
	require.NotEmpty(t, header)

	var meta struct {
		PreviousPageLink *string `json:"previousPageLink"`
		NextPageLink     string  `json:"nextPageLink"`
		PageSize         int     `json:"pageSize"`
		CurrentPage      int     `json:"currentPage"`
		TotalCount       int     `json:"totalCount"`
		TotalPages       int     `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal([]byte(header), &meta))
	require.NotNil(t, meta.PreviousPageLink)
	assert.Equal(t, "/users?pageNumber=1&pageSize=2", *meta.PreviousPageLink)
	assert.Equal(t, "/users?pageNumber=3&pageSize=2", meta.NextPageLink)
	assert.Equal(t, 2, meta.PageSize)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 5, meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestListUsers_ClampsInputs(t *testing.T) {
	srv := newTestServer(t)
	createUser(t, srv, "user1")

	resp := doJSON(t, http.MethodGet, srv.URL+"/users?pageNumber=0&pageSize=1000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var meta struct {
		PreviousPageLink *string `json:"previousPageLink"`
		PageSize         int     `json:"pageSize"`
		CurrentPage      int     `json:"currentPage"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Header.Get("X-Pagination")), &meta))
	assert.Nil(t, meta.PreviousPageLink, "first page has no previous link")
	assert.Equal(t, 20, meta.PageSize)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestOptionsUsers(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/users", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "GET,POST,OPTIONS", resp.Header.Get("Allow"))
}
