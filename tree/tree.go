// Package tree stores a captured directory structure in an in-memory
// quad store and resolves slash-separated paths against it. The graph is
// written once, at load time, and treated as immutable afterwards.
package tree

import (
	"context"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/cayley/quad"
)

const RootNodeId = "rootNode"

type Tree struct {
	*cayley.Handle
	RootNode *Node
}

func NewTree(handle *cayley.Handle) *Tree {
	t := &Tree{handle, nil}
	t.RootNode = t.NodeWithId(RootNodeId)

	return t
}

func (t *Tree) NodeWithId(id string) *Node {
	return &Node{Id: id, tree: t}
}

// NodeWithName returns the child of parentId called name, or nil. When
// siblings share a name, the one that appeared first in the source
// document wins.
func (t *Tree) NodeWithName(parentId, name string) *Node {
	namePath := cayley.StartPath(t, quad.String(name)).In(quad.String(nameLink))
	parentPath := cayley.StartPath(t, quad.String(parentId)).In(quad.String(parentLink))

	var match *Node
	namePath.And(parentPath).Iterate(context.TODO()).EachValue(nil, func(v quad.Value) {
		candidate := t.NodeWithId(quadString(v))
		candidate.parentId = parentId
		if match == nil || candidate.Rank() < match.Rank() {
			match = candidate
		}
	})

	return match
}

func (t *Tree) graphValue(id, link string) (value string) {
	p := cayley.StartPath(t, quad.String(id)).Out(quad.String(link))
	p.Iterate(context.TODO()).EachValue(nil, func(v quad.Value) {
		if value == "" {
			value = quadString(v)
		}
	})

	return
}

func quadString(v quad.Value) string {
	if s, ok := quad.NativeOf(v).(string); ok {
		return s
	}
	return ""
}
