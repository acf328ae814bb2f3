package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "activities-service/internal/http"
	"activities-service/internal/registry"
	"activities-service/internal/service"
)

// newTestServer поднимает полный стек: реестр -> сервис -> роутер.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	reg := registry.New(registry.DefaultCatalog())
	svc := service.NewActivityService(reg)
	h := httpapi.NewHandler(svc, logger)

	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func getParticipants(t *testing.T, srv *httptest.Server, activity string) []string {
	t.Helper()

	resp, err := http.Get(srv.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]struct {
		Participants []string `json:"participants"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	a, ok := body[activity]
	require.True(t, ok, "activity %s not present in listing", activity)
	return a.Participants
}

func decodeDetail(t *testing.T, r io.Reader) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body.Detail
}

func TestAPI_SignupAndRemoveFlow(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	const activity = "Basketball"
	const email = "newstudent@mergington.edu"
	signupURL := srv.URL + "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	removeURL := srv.URL + "/activities/" + url.PathEscape(activity) + "/participants/" + url.PathEscape(email)

	// Запись: 200 и участник появляется в листинге
	resp, err := client.Post(signupURL, "application/json", nil)
	require.NoError(t, err)
	var okBody struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&okBody))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, okBody.Message, "Signed up")
	assert.Contains(t, okBody.Message, email)
	assert.Contains(t, getParticipants(t, srv, activity), email)

	// Повторная запись: 400 c "already signed up"
	resp, err = client.Post(signupURL, "application/json", nil)
	require.NoError(t, err)
	detail := decodeDetail(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, detail, "already signed up")

	// Отписка: 200 и участник исчезает из листинга
	req, err := http.NewRequest(http.MethodDelete, removeURL, nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&okBody))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, okBody.Message, "Removed")
	assert.NotContains(t, getParticipants(t, srv, activity), email)

	// Повторная отписка: 404 с сообщением, отличным от "Activity not found"
	req, err = http.NewRequest(http.MethodDelete, removeURL, nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	detail = decodeDetail(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, detail, "not signed up")
	assert.NotEqual(t, "Activity not found", detail)
}

func TestAPI_UnknownActivity(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	base := srv.URL + "/activities/" + url.PathEscape("Nonexistent Activity")

	resp, err := client.Post(base+"/signup?email=student@mergington.edu", "application/json", nil)
	require.NoError(t, err)
	detail := decodeDetail(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Activity not found", detail)

	req, err := http.NewRequest(http.MethodDelete, base+"/participants/student@mergington.edu", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	detail = decodeDetail(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Activity not found", detail)
}

func TestAPI_ListSeededActivities(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	for _, seeded := range registry.DefaultCatalog() {
		a, ok := body[seeded.Name]
		require.True(t, ok, "seeded activity %s missing from listing", seeded.Name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Schedule)
		assert.Equal(t, seeded.Participants, a.Participants)
	}
}

func TestAPI_MultipleParticipants(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	const activity = "Art Class"
	emails := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}

	for _, email := range emails {
		resp, err := client.Post(
			srv.URL+"/activities/"+url.PathEscape(activity)+"/signup?email="+url.QueryEscape(email),
			"application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	participants := getParticipants(t, srv, activity)
	for _, email := range emails {
		assert.Contains(t, participants, email)
	}

	req, err := http.NewRequest(http.MethodDelete,
		srv.URL+"/activities/"+url.PathEscape(activity)+"/participants/"+url.PathEscape(emails[0]), nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	participants = getParticipants(t, srv, activity)
	assert.NotContains(t, participants, emails[0])
	assert.Contains(t, participants, emails[1])
	assert.Contains(t, participants, emails[2])
}

func TestAPI_ServesPortal(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Mergington High School")
}
