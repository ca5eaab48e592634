// Package api exposes listings over HTTP. Responses are encoded as JSON
// unless the client asks for gob via the Accept header.
package api

import (
	"encoding/gob"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sdcoffey/atlas/listing"
	"github.com/sdcoffey/atlas/tree"
	"github.com/sdcoffey/atlas/util"
)

type Encoder interface {
	Encode(interface{}) error
}

type AtlasApi struct {
	http.Handler
	tree *tree.Tree
}

func NewApi(t *tree.Tree) AtlasApi {
	r := mux.NewRouter()
	v1Router := r.PathPrefix("/v1").Subrouter()

	restApi := AtlasApi{r, t}

	v1Router.HandleFunc("/ls", restApi.ListPath).Methods("GET")
	v1Router.HandleFunc("/ls/{path:.*}", restApi.ListPath).Methods("GET")
	v1Router.HandleFunc("/stat", restApi.StatPath).Methods("GET")
	v1Router.HandleFunc("/stat/{path:.*}", restApi.StatPath).Methods("GET")

	return restApi
}

func encoderFromHeader(w io.Writer, header http.Header) Encoder {
	if header.Get("Accept") == "application/gob" {
		return gob.NewEncoder(w)
	}
	return json.NewEncoder(w)
}

// GET /v1/ls/{path}?all&reverse&time&filter=
// Rendering concerns (long format, human sizes) stay client-side.
func (restApi AtlasApi) ListPath(writer http.ResponseWriter, req *http.Request) {
	node, err := restApi.tree.Resolve(paramFromRequest("path", req))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusNotFound)
		return
	}

	var infos []tree.NodeInfo
	if node.IsDir() {
		selected, err := listing.Select(node, optionsFromQuery(req.URL.Query()))
		if err != nil {
			http.Error(writer, err.Error(), http.StatusBadRequest)
			return
		}

		infos = make([]tree.NodeInfo, len(selected))
		for idx, child := range selected {
			infos[idx] = nodeInfo(child)
		}
	} else {
		infos = []tree.NodeInfo{nodeInfo(node)}
	}

	encoder := encoderFromHeader(writer, req.Header)
	writer.WriteHeader(http.StatusOK)
	encoder.Encode(infos)
}

// GET /v1/stat/{path}
func (restApi AtlasApi) StatPath(writer http.ResponseWriter, req *http.Request) {
	node, err := restApi.tree.Resolve(paramFromRequest("path", req))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusNotFound)
		return
	}

	encoder := encoderFromHeader(writer, req.Header)
	writer.WriteHeader(http.StatusOK)
	encoder.Encode(nodeInfo(node))
}

func nodeInfo(nd *tree.Node) tree.NodeInfo {
	info := nd.NodeInfo()
	if !info.Dir {
		info.Type = util.MimeType(info.Name)
	}

	return info
}

func optionsFromQuery(query url.Values) listing.Options {
	boolParam := func(key string) bool {
		value, _ := strconv.ParseBool(query.Get(key))
		return value
	}

	return listing.Options{
		ShowHidden: boolParam("all"),
		Reverse:    boolParam("reverse"),
		SortByTime: boolParam("time"),
		FilterBy:   query.Get("filter"),
	}
}

func paramFromRequest(key string, req *http.Request) string {
	vars := mux.Vars(req)
	return vars[key]
}
