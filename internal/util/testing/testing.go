package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	Code int
	Body []byte
}

type RequestOptions struct {
	Method string
	URL    string
	Token  string
	Body   any
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions, expectedStatus int) TestResponse {
	t.Helper()

	var bodyReader *bytes.Reader
	if options.Body != nil {
		data, err := json.Marshal(options.Body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(options.Method, options.URL, bodyReader)
	require.NoError(t, err)

	if options.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.Token != "" {
		req.Header.Set("Authorization", options.Token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, expectedStatus, w.Code,
		"unexpected status for %s %s: %s", options.Method, options.URL, w.Body.String())

	return TestResponse{Code: w.Code, Body: w.Body.Bytes()}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{Method: "GET", URL: url, Token: token}, expectedStatus)
}

func MakePostRequest(t *testing.T, router *gin.Engine, url, token string, body any, expectedStatus int) TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{Method: "POST", URL: url, Token: token, Body: body}, expectedStatus)
}

func MakePutRequest(t *testing.T, router *gin.Engine, url, token string, body any, expectedStatus int) TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{Method: "PUT", URL: url, Token: token, Body: body}, expectedStatus)
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{Method: "DELETE", URL: url, Token: token}, expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	expectedStatus int,
	out any,
) TestResponse {
	t.Helper()
	resp := MakeGetRequest(t, router, url, token, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
	return resp
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
	out any,
) TestResponse {
	t.Helper()
	resp := MakePostRequest(t, router, url, token, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
	return resp
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
	out any,
) TestResponse {
	t.Helper()
	resp := MakePutRequest(t, router, url, token, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
	return resp
}
