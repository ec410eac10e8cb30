package controllers_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

// chdir is the pre-Go 1.24 equivalent of t.Chdir: change into dir for the
// duration of the test and restore the previous working directory afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestGetPartnersFiltersByShowFlag(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v2/tables/tblP/records",
		httpmock.NewStringResponder(200, `{"list":[
			{"Id":1,"Name":"Visible Bank","Categrory":"Finance","Show":true,"Featured":"true"},
			{"Id":2,"Name":"Hidden Corp","Show":false},
			{"Id":3,"Name":"Legacy Org","Show":"TRUE","Featured":0}
		]}`))

	w := doJSON(router, http.MethodGet, "/api/partners", "")
	require.Equal(t, http.StatusOK, w.Code)

	var partners []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partners))
	require.Len(t, partners, 2)
	require.Equal(t, "Visible Bank", partners[0]["name"])
	require.Equal(t, true, partners[0]["featured"])
	require.Equal(t, "Legacy Org", partners[1]["name"])
	require.Equal(t, false, partners[1]["featured"])
}

func TestGetMembersReadsCSVPerRequest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "public"), 0o755))
	csv := "Name,Batch,Role,Company,LinkedIn,ImageUrl,Bio,Expertise,Achievements\n" +
		"Jane Doe,B12,President,Acme,,,,\"Marketing, Sales\",\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public", "MembersList.csv"), []byte(csv), 0o644))
	chdir(t, dir)

	router := newAPIRouter()

	w := doJSON(router, http.MethodGet, "/api/members", "")
	require.Equal(t, http.StatusOK, w.Code)

	var members []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1)
	require.Equal(t, "Jane Doe", members[0]["name"])
	require.Equal(t, []any{"Marketing", "Sales"}, members[0]["expertise"])
	require.Equal(t, "/images/members/placeholder.png", members[0]["imageUrl"])
}

func TestGetMembersFailsClosedWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	router := newAPIRouter()

	w := doJSON(router, http.MethodGet, "/api/members", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to load members")
}

func TestContactRejectsInvalidPayloads(t *testing.T) {
	router := newAPIRouter()

	w := doJSON(router, http.MethodPost, "/api/contact", `{"email":"jane@example.org"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"not-an-email","message":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email address")
}

func TestLumaRoutesFailClosedWithoutKey(t *testing.T) {
	t.Setenv("LUMA_API_KEY", "")
	router := newAPIRouter()

	for _, path := range []string{"/api/luma/past-events", "/api/luma/upcoming-events"} {
		w := doJSON(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp, "error")
		require.Contains(t, resp, "details")
	}
}
