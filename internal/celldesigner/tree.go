package celldesigner

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// parseTree reads the whole document and returns its root element.
// Non-UTF-8 documents are decoded using their declared encoding.
func parseTree(content []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromBytes(content); err != nil {
		return nil, errors.Join(domain.ErrInvalidInput, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, domain.ErrInvalidInput
	}
	if len(doc.ChildElements()) > 1 {
		return nil, errors.Join(domain.ErrInvalidInput, errors.New("more than one root element"))
	}
	return root, nil
}

// is compares the resolved namespace URI, never the prefix.
func is(el *etree.Element, space, local string) bool {
	return el.Tag == local && el.NamespaceURI() == space
}

// child returns the first direct child with the given name.
func child(el *etree.Element, space, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if is(c, space, local) {
			return c
		}
	}
	return nil
}

// descendant returns the first matching descendant in document order,
// excluding el itself. Later matches are ignored.
func descendant(el *etree.Element, space, local string) *etree.Element {
	return firstDescendant(el, func(c *etree.Element) bool { return is(c, space, local) })
}

// descendantByTag matches the local name in any namespace.
func descendantByTag(el *etree.Element, local string) *etree.Element {
	return firstDescendant(el, func(c *etree.Element) bool { return c.Tag == local })
}

func firstDescendant(el *etree.Element, match func(*etree.Element) bool) *etree.Element {
	for _, c := range el.ChildElements() {
		if match(c) {
			return c
		}
		if found := firstDescendant(c, match); found != nil {
			return found
		}
	}
	return nil
}

// attrValue returns an unqualified attribute value or "".
func attrValue(el *etree.Element, local string) string {
	return el.SelectAttrValue(local, "")
}

// content returns the element's leading character data, trimmed.
func content(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}
