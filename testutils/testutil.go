package testutils

import (
	"strings"

	"github.com/sdcoffey/atlas/tree"
)

// SampleDocument is a small structure shared by test packages: a project
// root with a hidden file, plain files of varying sizes and ages, and a
// nested package directory.
const SampleDocument = `{
  "name": "interpreter",
  "size": 4096,
  "time_modified": 1699957865,
  "permissions": "drwxr-xr-x",
  "contents": [
    {"name": ".gitignore", "size": 8911, "time_modified": 1699941437, "permissions": "-rw-r--r--"},
    {"name": "LICENSE", "size": 1071, "time_modified": 1699941437, "permissions": "-rw-r--r--"},
    {"name": "README.md", "size": 83, "time_modified": 1699941437, "permissions": "-rw-r--r--"},
    {"name": "main.go", "size": 74, "time_modified": 1699950073, "permissions": "-rw-r--r--"},
    {"name": "parser", "size": 4096, "time_modified": 1700205662, "permissions": "drwxr-xr-x", "contents": [
      {"name": "parser.go", "size": 1622, "time_modified": 1700202950, "permissions": "-rw-r--r--"},
      {"name": "parser_test.go", "size": 1342, "time_modified": 1700205662, "permissions": "-rw-r--r--"},
      {"name": "go.mod", "size": 533, "time_modified": 1699958000, "permissions": "-rw-r--r--"}
    ]},
    {"name": "lexer", "size": 4096, "time_modified": 1699955487, "permissions": "drwxr-xr-x", "contents": [
      {"name": "lexer.go", "size": 2886, "time_modified": 1699955487, "permissions": "-rw-r--r--"}
    ]},
    {"name": "empty", "size": 4096, "time_modified": 1699941437, "permissions": "drwxr-xr-x", "contents": []},
    {"name": "token.go", "size": 910, "time_modified": 1699954837, "permissions": "-rw-r--r--"}
  ]
}`

// SampleTree loads SampleDocument into a fresh graph.
func SampleTree() *tree.Tree {
	return TreeFromDocument(SampleDocument)
}

func TreeFromDocument(document string) *tree.Tree {
	doc, err := tree.ParseDocument(strings.NewReader(document), ".json")
	if err != nil {
		panic(err)
	}

	t, err := tree.Load(doc)
	if err != nil {
		panic(err)
	}

	return t
}
