package teams_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func makePostAndUnmarshal(
	router *gin.Engine,
	url string,
	token string,
	body any,
	expectedStatus int,
	out any,
) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(http.MethodPost, url, reader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != expectedStatus {
		panic(fmt.Sprintf(
			"unexpected status for %s: got %d, want %d, body: %s",
			url, recorder.Code, expectedStatus, recorder.Body.String()))
	}

	if out != nil {
		if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
			panic(err)
		}
	}
}
