package api

import (
	"encoding/gob"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdcoffey/atlas/testutils"
	"github.com/sdcoffey/atlas/tree"
)

func testServer() *httptest.Server {
	return httptest.NewServer(NewApi(testutils.SampleTree()))
}

func getInfos(t *testing.T, url string) []tree.NodeInfo {
	resp, err := http.Get(url)
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []tree.NodeInfo
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&infos))
	return infos
}

func TestListPath_rootHidesDotfiles(t *testing.T) {
	server := testServer()
	defer server.Close()

	infos := getInfos(t, server.URL+"/v1/ls")
	names := make([]string, len(infos))
	for idx, info := range infos {
		names[idx] = info.Name
	}

	assert.Equal(t, []string{"LICENSE", "README.md", "main.go", "parser", "lexer", "empty", "token.go"}, names)
}

func TestListPath_allIncludesDotfiles(t *testing.T) {
	server := testServer()
	defer server.Close()

	infos := getInfos(t, server.URL+"/v1/ls?all=true")
	assert.Equal(t, ".gitignore", infos[0].Name)
}

func TestListPath_nestedPath(t *testing.T) {
	server := testServer()
	defer server.Close()

	infos := getInfos(t, server.URL+"/v1/ls/parser")
	assert.Len(t, infos, 3)
	assert.Equal(t, "parser.go", infos[0].Name)
	assert.Equal(t, "-rw-r--r--", infos[0].Permissions)
	assert.EqualValues(t, 1622, infos[0].Size)
}

func TestListPath_timeSortWithReverseDescends(t *testing.T) {
	server := testServer()
	defer server.Close()

	infos := getInfos(t, server.URL+"/v1/ls?time=true&reverse=true")
	assert.Equal(t, "parser", infos[0].Name)
	for i := 1; i < len(infos); i++ {
		assert.False(t, infos[i].MTime.After(infos[i-1].MTime))
	}
}

func TestListPath_fileListsItselfWithMimeType(t *testing.T) {
	server := testServer()
	defer server.Close()

	infos := getInfos(t, server.URL+"/v1/ls/README.md")
	assert.Len(t, infos, 1)
	assert.Equal(t, "README.md", infos[0].Name)
	assert.False(t, infos[0].Dir)
	assert.NotEmpty(t, infos[0].Type)
}

func TestListPath_unknownPathIs404(t *testing.T) {
	server := testServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/ls/proust")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "cannot access 'proust'")
}

func TestListPath_invalidFilterIs400(t *testing.T) {
	server := testServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/ls?filter=folder")
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "not a valid filter criteria")
}

func TestListPath_speaksGobWhenAsked(t *testing.T) {
	server := testServer()
	defer server.Close()

	request, _ := http.NewRequest("GET", server.URL+"/v1/ls/parser", nil)
	request.Header.Add("Accept", "application/gob")
	resp, err := http.DefaultClient.Do(request)
	assert.Nil(t, err)
	defer resp.Body.Close()

	var infos []tree.NodeInfo
	assert.Nil(t, gob.NewDecoder(resp.Body).Decode(&infos))
	assert.Len(t, infos, 3)
}

func TestStatPath_returnsSingleNode(t *testing.T) {
	server := testServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/stat/parser")
	assert.Nil(t, err)
	defer resp.Body.Close()

	var info tree.NodeInfo
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "parser", info.Name)
	assert.True(t, info.Dir)
	assert.Equal(t, "", info.Type)
}

func TestStatPath_unknownPathIs404(t *testing.T) {
	server := testServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/stat/nope")
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOptionsFromQuery_parsesRecognizedParams(t *testing.T) {
	req, _ := http.NewRequest("GET", "/v1/ls?all=true&time=true&filter=dir", strings.NewReader(""))

	opts := optionsFromQuery(req.URL.Query())
	assert.True(t, opts.ShowHidden)
	assert.True(t, opts.SortByTime)
	assert.False(t, opts.Reverse)
	assert.Equal(t, "dir", opts.FilterBy)
}
