// Package metadata extracts article and citation tables from JATS-style
// article metadata files.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dfr-tools/dfrgram/pkg/textutil"
)

// Article types with special handling.
const (
	TypeResearchArticle = "research-article"
	TypeBookReview      = "book-review"
	TypeMisc            = "misc"
)

// Element paths inside an article document.
// metadataExt is the extension of metadata files, matched case-insensitively.
const metadataExt = ".xml"

const (
	pathTitle      = "front/article-meta/title-group/article-title"
	pathTitleGroup = "front/article-meta/title-group"
	pathAuthor     = "front/article-meta/contrib-group/contrib/string-name"
	pathLang       = "front/article-meta/custom-meta-group/custom-meta/meta-value"
	pathYear       = "front/article-meta/pub-date/year"
	pathCitations  = "back/fn-group/fn/p/mixed-citation"

	pathCitationAuthor = "person-group/string-name/surname"
	pathCitationSource = "source"
	pathCitationYear   = "year"

	attrArticleType = "article-type"
)

var (
	// ErrMissingType is returned when the root element has no article-type attribute.
	ErrMissingType = errors.New("article-type attribute missing")
	// ErrMissingYear is returned when the publication year is absent.
	ErrMissingYear = errors.New("publication year missing")
	// ErrInvalidYear is returned when the publication year is not an integer.
	ErrInvalidYear = errors.New("publication year is not an integer")
)

// Article is one row of the reference table.
type Article struct {
	ID     string `json:"id"     yaml:"id"`
	Type   string `json:"type"   yaml:"type"`
	Title  string `json:"title"  yaml:"title"`
	Author string `json:"auth1"  yaml:"auth1"`
	Year   int    `json:"year"   yaml:"year"`
	Lang   string `json:"lang"   yaml:"lang"`
}

// Citation is one footnote reference of a research article.
type Citation struct {
	ArticleID       string `json:"id"               yaml:"id"`
	Title           string `json:"title"            yaml:"title"`
	ArticleAuthor   string `json:"article_author"   yaml:"article_author"`
	CitationAuthor  string `json:"citation_author"  yaml:"citation_author"`
	CitationSource  string `json:"citation_source"  yaml:"citation_source"`
	CitationYear    string `json:"citation_year"    yaml:"citation_year"`
	CitationGeneral string `json:"citation_general" yaml:"citation_general"`
}

// Dataset holds the tables extracted from a metadata directory.
type Dataset struct {
	Articles  []Article
	Citations []Citation
}

// ArticleID returns the file base name without its ".xml" extension, matched
// case-insensitively. Other extensions are kept, since ids contain dots.
func ArticleID(path string) string {
	base := filepath.Base(path)

	ext := filepath.Ext(base)
	if strings.EqualFold(ext, metadataExt) {
		return strings.TrimSuffix(base, ext)
	}

	return base
}

// ParseArticle reads one metadata document. Citations are only collected for
// research articles.
func ParseArticle(id string, r io.Reader) (Article, []Citation, error) {
	root, err := parseTree(r)
	if err != nil {
		return Article{}, nil, err
	}

	atype, ok := root.attrs[attrArticleType]
	if !ok {
		return Article{}, nil, ErrMissingType
	}

	yearElem := root.find(pathYear)
	if yearElem == nil {
		return Article{}, nil, ErrMissingYear
	}

	rawYear := textutil.Clean(yearElem.innerText())

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return Article{}, nil, fmt.Errorf("%w: %q", ErrInvalidYear, rawYear)
	}

	article := Article{
		ID:     id,
		Type:   atype,
		Title:  articleTitle(root),
		Author: firstAuthor(root),
		Year:   year,
		Lang:   textutil.Clean(root.find(pathLang).innerText()),
	}

	if atype != TypeResearchArticle {
		return article, nil, nil
	}

	return article, citations(root, article), nil
}

func articleTitle(root *element) string {
	group := root.find(pathTitleGroup)
	if group == nil || len(group.children) == 0 {
		return ""
	}

	return textutil.Clean(root.find(pathTitle).innerText())
}

// firstAuthor joins the name parts of the first contributor with spaces.
func firstAuthor(root *element) string {
	name := root.find(pathAuthor)
	if name == nil {
		return ""
	}

	parts := make([]string, 0, len(name.children))

	for _, part := range name.children {
		if text := textutil.Clean(part.innerText()); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

func citations(root *element, article Article) []Citation {
	elems := root.findAll(pathCitations)
	out := make([]Citation, 0, len(elems))

	for _, el := range elems {
		out = append(out, Citation{
			ArticleID:       article.ID,
			Title:           article.Title,
			ArticleAuthor:   article.Author,
			CitationAuthor:  textutil.Clean(el.find(pathCitationAuthor).innerText()),
			CitationSource:  textutil.Clean(el.find(pathCitationSource).innerText()),
			CitationYear:    textutil.Clean(el.find(pathCitationYear).innerText()),
			CitationGeneral: textutil.Clean(el.leadText()),
		})
	}

	return out
}
