package tree

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/cayley/quad"
)

const (
	parentLink      = "hasParent"
	nameLink        = "isNamed"
	permissionsLink = "hasPermissions"
	sizeLink        = "hasSize"
	mTimeLink       = "hasMTime"
	rankLink        = "hasRank"
	typeLink        = "hasType"

	dirType  = "dir"
	fileType = "file"
)

// Node is a lazy view over one entry in the graph. Accessors cache what
// they read, which is safe because nothing writes after load.
type Node struct {
	Id          string
	tree        *Tree
	parentId    string
	name        string
	permissions string
	size        int64
	mTime       time.Time
	kind        string
	rank        int
}

func (nd *Node) Name() string {
	if nd.name == "" {
		nd.name = nd.tree.graphValue(nd.Id, nameLink)
	}

	return nd.name
}

func (nd *Node) Permissions() string {
	if nd.permissions == "" {
		nd.permissions = nd.tree.graphValue(nd.Id, permissionsLink)
	}

	return nd.permissions
}

func (nd *Node) Size() int64 {
	if nd.size == 0 {
		nd.size, _ = strconv.ParseInt(nd.tree.graphValue(nd.Id, sizeLink), 10, 64)
	}

	return nd.size
}

func (nd *Node) ModTime() time.Time {
	if nd.mTime.IsZero() {
		if unixTime, err := strconv.ParseInt(nd.tree.graphValue(nd.Id, mTimeLink), 10, 64); err == nil {
			nd.mTime = time.Unix(unixTime, 0)
		}
	}

	return nd.mTime
}

func (nd *Node) IsDir() bool {
	if nd.kind == "" {
		nd.kind = nd.tree.graphValue(nd.Id, typeLink)
	}

	return nd.kind == dirType
}

// Rank is the node's position among its siblings in the source document.
func (nd *Node) Rank() int {
	if nd.rank == 0 {
		if rank, err := strconv.Atoi(nd.tree.graphValue(nd.Id, rankLink)); err == nil {
			nd.rank = rank + 1
		}
	}

	return nd.rank - 1
}

func (nd *Node) Parent() *Node {
	if nd.parentId == "" {
		nd.parentId = nd.tree.graphValue(nd.Id, parentLink)
	}
	if nd.parentId == "" {
		return nil
	}

	return nd.tree.NodeWithId(nd.parentId)
}

// Children returns the node's children in document order. Files have none.
func (nd *Node) Children() []*Node {
	if !nd.IsDir() {
		return make([]*Node, 0)
	}

	it := cayley.StartPath(nd.tree, quad.String(nd.Id)).In(quad.String(parentLink))
	children := make([]*Node, 0, 10)
	it.Iterate(context.TODO()).EachValue(nil, func(v quad.Value) {
		child := nd.tree.NodeWithId(quadString(v))
		child.parentId = nd.Id
		children = append(children, child)
	})

	Sort(children, DocumentOrder)

	return children
}

func (nd *Node) Exists() bool {
	return nd.Name() != ""
}

func (nd *Node) NodeInfo() NodeInfo {
	info := NodeInfo{
		Id:          nd.Id,
		Name:        nd.Name(),
		Permissions: nd.Permissions(),
		Size:        nd.Size(),
		MTime:       nd.ModTime(),
		Dir:         nd.IsDir(),
	}
	if parent := nd.Parent(); parent != nil {
		info.ParentId = parent.Id
	}

	return info
}

func (nd *Node) String() string {
	return fmt.Sprintf("%s	%d	%s	%s (%s)", nd.Permissions(), nd.Size(), nd.ModTime().Format(time.Stamp), nd.Name(), nd.Id)
}

type NodeInfo struct {
	Id          string
	ParentId    string
	Name        string
	Permissions string
	Size        int64
	MTime       time.Time
	Dir         bool
	Type        string
}
