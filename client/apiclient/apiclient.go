package apiclient

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sdcoffey/atlas/listing"
	"github.com/sdcoffey/atlas/tree"
)

type ApiClient struct {
	Address string
}

func (client ApiClient) Ls(path string, opts listing.Options) ([]tree.NodeInfo, error) {
	requestUrl := fmt.Sprintf("%s/v1/ls/%s?%s", client.Address, escapePath(path), queryFromOptions(opts).Encode())

	var infos []tree.NodeInfo
	if err := client.get(requestUrl, &infos); err != nil {
		return nil, err
	}

	return infos, nil
}

func (client ApiClient) Stat(path string) (tree.NodeInfo, error) {
	requestUrl := fmt.Sprintf("%s/v1/stat/%s", client.Address, escapePath(path))

	var info tree.NodeInfo
	if err := client.get(requestUrl, &info); err != nil {
		return tree.NodeInfo{}, err
	}

	return info, nil
}

func (client ApiClient) get(requestUrl string, result interface{}) error {
	request, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return err
	}
	request.Header.Add("Accept", "application/gob")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.New(strings.TrimSpace(string(body)))
	}

	return gob.NewDecoder(resp.Body).Decode(result)
}

func queryFromOptions(opts listing.Options) url.Values {
	query := url.Values{}
	if opts.ShowHidden {
		query.Set("all", "true")
	}
	if opts.Reverse {
		query.Set("reverse", "true")
	}
	if opts.SortByTime {
		query.Set("time", "true")
	}
	if opts.FilterBy != "" {
		query.Set("filter", opts.FilterBy)
	}

	return query
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for idx, segment := range segments {
		segments[idx] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
