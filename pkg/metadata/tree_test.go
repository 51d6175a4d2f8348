package metadata //nolint:testpackage // testing internal implementation.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree_MixedContent(t *testing.T) {
	t.Parallel()

	doc := `<root a="1"><p>lead <b>bold</b> middle <i>it</i> end</p><p>second</p></root>`

	root, err := parseTree(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "root", root.name)
	assert.Equal(t, "1", root.attrs["a"])

	paras := root.findAll("p")
	require.Len(t, paras, 2)

	assert.Equal(t, "lead ", paras[0].leadText())
	assert.Equal(t, "lead bold middle it end", paras[0].innerText())
	assert.Equal(t, " middle ", paras[0].find("b").tail)
	assert.Equal(t, "second", paras[1].innerText())
}

func TestElement_FindAcrossBranches(t *testing.T) {
	t.Parallel()

	doc := `<r><a><b>1</b></a><a><b>2</b><b>3</b></a></r>`

	root, err := parseTree(strings.NewReader(doc))
	require.NoError(t, err)

	var got []string
	for _, b := range root.findAll("a/b") {
		got = append(got, b.innerText())
	}

	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.Nil(t, root.find("a/c"))
}

func TestElement_NilSafe(t *testing.T) {
	t.Parallel()

	var missing *element

	assert.Nil(t, missing.find("x"))
	assert.Empty(t, missing.innerText())
	assert.Empty(t, missing.leadText())
}

func TestParseTree_Errors(t *testing.T) {
	t.Parallel()

	_, err := parseTree(strings.NewReader(""))
	require.ErrorIs(t, err, errNoRoot)

	_, err = parseTree(strings.NewReader("<a><b></a>"))
	require.Error(t, err)
}

func TestParseTree_HTMLEntities(t *testing.T) {
	t.Parallel()

	root, err := parseTree(strings.NewReader("<a>x&nbsp;y &amp; z</a>"))
	require.NoError(t, err)

	assert.Equal(t, "x y & z", root.innerText())
}
