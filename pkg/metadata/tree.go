package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errNoRoot is returned when a document holds no element.
var errNoRoot = errors.New("document has no root element")

// element is a minimal XML element tree. Character data is split the way
// mixed content reads: text before the first child, and each child's tail
// after its end tag.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     string
	tail     string
}

// parseTree decodes r into an element tree. Standard HTML entities such as
// &nbsp; are accepted since publisher metadata uses them freely.
func parseTree(r io.Reader) (*element, error) {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity

	var (
		stack []*element
		root  *element
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elem := &element{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				elem.attrs[a.Name.Local] = a.Value
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
			} else if root == nil {
				root = elem
			}

			stack = append(stack, elem)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}

			top := stack[len(stack)-1]
			if n := len(top.children); n > 0 {
				top.children[n-1].tail += string(t)
			} else {
				top.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errNoRoot
	}

	return root, nil
}

// findAll returns every element reached by the slash-separated child path,
// in document order.
func (e *element) findAll(path string) []*element {
	if e == nil {
		return nil
	}

	current := []*element{e}

	for step := range strings.SplitSeq(path, "/") {
		var next []*element

		for _, el := range current {
			for _, child := range el.children {
				if child.name == step {
					next = append(next, child)
				}
			}
		}

		current = next
	}

	return current
}

// find returns the first element reached by path, or nil.
func (e *element) find(path string) *element {
	if all := e.findAll(path); len(all) > 0 {
		return all[0]
	}

	return nil
}

// innerText concatenates the character data of e and all its descendants.
func (e *element) innerText() string {
	if e == nil {
		return ""
	}

	var sb strings.Builder

	e.writeText(&sb)

	return sb.String()
}

func (e *element) writeText(sb *strings.Builder) {
	sb.WriteString(e.text)

	for _, child := range e.children {
		child.writeText(sb)
		sb.WriteString(child.tail)
	}
}

// leadText returns the character data before the first child element.
func (e *element) leadText() string {
	if e == nil {
		return ""
	}

	return e.text
}
