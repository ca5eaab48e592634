package tree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/cayley/graph"
	"github.com/cayleygraph/cayley/quad"
	"github.com/pborman/uuid"
	"gopkg.in/yaml.v3"
)

// DocumentNode is one entry of a structure document. Contents is a
// pointer so that a present-but-empty list still marks a directory,
// while a missing key marks a file.
type DocumentNode struct {
	Name         string          `json:"name" yaml:"name"`
	Size         int64           `json:"size" yaml:"size"`
	TimeModified int64           `json:"time_modified" yaml:"time_modified"`
	Permissions  string          `json:"permissions" yaml:"permissions"`
	Contents     *[]DocumentNode `json:"contents,omitempty" yaml:"contents,omitempty"`
}

func (dn *DocumentNode) IsDir() bool {
	return dn.Contents != nil
}

// ParseDocument decodes a structure document. Documents are JSON unless
// ext says ".yaml" or ".yml".
func ParseDocument(reader io.Reader, ext string) (*DocumentNode, error) {
	doc := new(DocumentNode)

	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(reader).Decode(doc)
	default:
		err = json.NewDecoder(reader).Decode(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding structure document: %w", err)
	}

	return doc, nil
}

// Load writes the document into a fresh in-memory graph and returns the
// tree over it. The document's top-level entry becomes the root node.
func Load(doc *DocumentNode) (*Tree, error) {
	handle, err := cayley.NewMemoryGraph()
	if err != nil {
		return nil, err
	}

	t := NewTree(handle)
	if err := t.addNode(doc, RootNodeId, "", 0); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) addNode(doc *DocumentNode, id, parentId string, rank int) error {
	kind := fileType
	if doc.IsDir() {
		kind = dirType
	}

	transaction := graph.NewTransaction()
	transaction.AddQuad(quad.Make(id, nameLink, doc.Name, nil))
	transaction.AddQuad(quad.Make(id, sizeLink, fmt.Sprint(doc.Size), nil))
	transaction.AddQuad(quad.Make(id, mTimeLink, fmt.Sprint(doc.TimeModified), nil))
	transaction.AddQuad(quad.Make(id, rankLink, fmt.Sprint(rank), nil))
	transaction.AddQuad(quad.Make(id, typeLink, kind, nil))
	if doc.Permissions != "" {
		transaction.AddQuad(quad.Make(id, permissionsLink, doc.Permissions, nil))
	}
	if parentId != "" {
		transaction.AddQuad(quad.Make(id, parentLink, parentId, nil))
	}

	if err := t.ApplyTransaction(transaction); err != nil {
		return err
	}

	if doc.Contents != nil {
		for idx := range *doc.Contents {
			if err := t.addNode(&(*doc.Contents)[idx], uuid.New(), id, idx); err != nil {
				return err
			}
		}
	}

	return nil
}
