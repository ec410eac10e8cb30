package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"startup-directory-api/routes"
	"startup-directory-api/services/nocodb"
)

const (
	testBaseURL  = "https://db.example.org"
	recordsURL   = testBaseURL + "/api/v2/tables/tblS/records"
	recordsMatch = "POST " + recordsURL
)

func newAPIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func setNocoEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NOCODB_API_TOKEN", "test-token")
	t.Setenv("NOCODB_BASE_URL", testBaseURL)
	t.Setenv("NOCODB_STARTUPS_TABLE_ID", "tblS")
	t.Setenv("NOCODB_PARTNERS_TABLE_ID", "tblP")
}

func activateMock(t *testing.T) {
	t.Helper()
	httpmock.ActivateNonDefault(nocodb.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateStartupSurvivesMalformedImagePayload(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	httpmock.RegisterResponder(http.MethodGet, recordsURL,
		httpmock.NewStringResponder(200, `{"list":[]}`))

	var createdFields map[string]any
	httpmock.RegisterResponder(http.MethodPost, recordsURL,
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&createdFields); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(200, `{"Id":42}`), nil
		})

	w := doJSON(router, http.MethodPost, "/api/startups/add",
		`{"name":"Acme","companyLogo":"data:image/png;base64,!!!not-base64!!!"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	require.Equal(t, float64(42), resp["recordId"])

	// The record was still written, with the image field degraded to null.
	require.NotNil(t, createdFields)
	require.Equal(t, "Acme", createdFields[nocodb.FieldName])
	require.Nil(t, createdFields[nocodb.FieldLogo])
}

func TestUpdateStartupPreservesHostedAttachment(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	storedAttachment := []any{map[string]any{
		"title":      "logo.png",
		"signedPath": "dltemp/acme.png",
	}}

	httpmock.RegisterResponder(http.MethodGet, recordsURL+"/7",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"Id":             float64(7),
			nocodb.FieldName: "Acme",
			nocodb.FieldLogo: storedAttachment,
		}))

	var patchedFields map[string]any
	httpmock.RegisterResponder(http.MethodPatch, recordsURL,
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&patchedFields); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(200, `{"Id":7}`), nil
		})

	w := doJSON(router, http.MethodPut, "/api/startups/7",
		`{"name":"Acme","companyLogo":"https://db.example.org/dltemp/acme.png"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, storedAttachment, patchedFields[nocodb.FieldLogo])
	require.Equal(t, float64(7), patchedFields["Id"])

	// No upload may happen for an already-hosted URL.
	info := httpmock.GetCallCountInfo()
	require.Zero(t, info["POST "+testBaseURL+"/api/v2/storage/upload"])
}

func TestUpdateStartupClearsEmptiedImageField(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	httpmock.RegisterResponder(http.MethodGet, recordsURL+"/7",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"Id":             float64(7),
			nocodb.FieldName: "Acme",
			nocodb.FieldLogo: []any{map[string]any{"signedPath": "dltemp/acme.png"}},
		}))

	var patchedFields map[string]any
	httpmock.RegisterResponder(http.MethodPatch, recordsURL,
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&patchedFields); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(200, `{"Id":7}`), nil
		})

	w := doJSON(router, http.MethodPut, "/api/startups/7", `{"name":"Acme","companyLogo":""}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, patchedFields, nocodb.FieldLogo)
	require.Nil(t, patchedFields[nocodb.FieldLogo])
}

func TestCreateStartupRejectsDuplicateName(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	httpmock.RegisterResponder(http.MethodGet, recordsURL,
		httpmock.NewStringResponder(200, `{"list":[{"Id":1,"Startup Name":"acme"}]}`))

	w := doJSON(router, http.MethodPost, "/api/startups/add", `{"name":" Acme "}`)

	require.Equal(t, http.StatusConflict, w.Code)

	// The write must be rejected before any create call.
	info := httpmock.GetCallCountInfo()
	require.Zero(t, info[recordsMatch])
}

func TestStartupRoutesFailClosedWithoutCredentials(t *testing.T) {
	t.Setenv("NOCODB_API_TOKEN", "")
	t.Setenv("NOCODB_STARTUPS_TABLE_ID", "")
	activateMock(t)
	router := newAPIRouter()

	w := doJSON(router, http.MethodGet, "/api/startups", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "not configured")
	require.Zero(t, httpmock.GetTotalCallCount())
}

func TestGetStartupMapsUpstream404(t *testing.T) {
	setNocoEnv(t)
	activateMock(t)
	router := newAPIRouter()

	httpmock.RegisterResponder(http.MethodGet, recordsURL+"/99",
		httpmock.NewStringResponder(404, `{"msg":"not found"}`))

	w := doJSON(router, http.MethodGet, "/api/startups/99", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Startup not found")
}
