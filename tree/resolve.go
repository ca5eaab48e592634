package tree

import (
	"fmt"
	"strings"
)

type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("cannot access '%s': No such file or directory", e.Path)
}

// Resolve walks path one segment at a time from the root. The empty path
// is the root itself. A file matched with segments still remaining is a
// dead end and reports NotFoundError, as does a missing segment.
func (t *Tree) Resolve(path string) (*Node, error) {
	node := t.RootNode
	if path == "" {
		return node, nil
	}

	for _, segment := range strings.Split(path, "/") {
		if !node.IsDir() {
			return nil, NotFoundError{path}
		}
		if node = t.NodeWithName(node.Id, segment); node == nil {
			return nil, NotFoundError{path}
		}
	}

	return node, nil
}
