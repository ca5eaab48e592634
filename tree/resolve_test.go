package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_emptyPathIsRoot(t *testing.T) {
	tr := testTree(t)

	node, err := tr.Resolve("")
	assert.Nil(t, err)
	assert.Equal(t, RootNodeId, node.Id)
}

func TestResolve_walksNestedPath(t *testing.T) {
	tr := testTree(t)

	node, err := tr.Resolve("src/main.go")
	assert.Nil(t, err)
	assert.Equal(t, "main.go", node.Name())
	assert.False(t, node.IsDir())
}

func TestResolve_returnsDirectories(t *testing.T) {
	tr := testTree(t)

	node, err := tr.Resolve("src")
	assert.Nil(t, err)
	assert.True(t, node.IsDir())
}

func TestResolve_missingSegmentReportsNotFound(t *testing.T) {
	tr := testTree(t)

	node, err := tr.Resolve("src/nope.go")
	assert.Nil(t, node)

	var notFound NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "src/nope.go", notFound.Path)
	assert.Contains(t, err.Error(), "cannot access 'src/nope.go'")
	assert.Contains(t, err.Error(), "No such file or directory")
}

func TestResolve_fileMidPathIsNotFound(t *testing.T) {
	tr := testTree(t)

	node, err := tr.Resolve("LICENSE/impossible")
	assert.Nil(t, node)

	var notFound NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolve_isDeterministic(t *testing.T) {
	tr := testTree(t)

	first, err := tr.Resolve("src/dup")
	assert.Nil(t, err)
	second, err := tr.Resolve("src/dup")
	assert.Nil(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.EqualValues(t, 100, second.Size())
}
