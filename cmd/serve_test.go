package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/8dcc/godsong-go/model"
)

func createConvertReqBody(songText, dialect string) io.Reader {
	body := model.ConvertRequestBody{Song: songText, Dialect: dialect}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestConvertLilypond(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", createConvertReqBody("4qC", "lilypond"))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var res model.ConvertResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	assert.Contains(res.Output, "c'4 ")
	assert.Empty(res.Warnings)
}

func TestConvertPmx(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", createConvertReqBody("C D E", "pmx"))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var res model.ConvertResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	assert.Contains(res.Output, "c44 d44 e44 ")
}

func TestConvertReportsWarnings(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", createConvertReqBody("tCD", "lilypond"))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var res model.ConvertResponse
	json.Unmarshal(respBody, &res)
	assert.Len(res.Warnings, 1)
}

func TestConvertUnknownDialect(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", createConvertReqBody("C", "abc"))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestConvertBadJson(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}
