package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

var errMissingChannel = errors.New("rss document has no channel element")

// Unprefixed elements of RSS 2.0 and the default namespace of RSS 1.0
var rssNamespaces = map[string]bool{
	"":                         true,
	"http://purl.org/rss/1.0/": true,
}

// fields records which child elements an rss item contained
type fields struct {
	title       bool
	description bool
	link        bool
}

// outline is what the strict markup pass learns about a document
type outline struct {
	root    string
	channel bool
	items   []fields
}

// scanMarkup walks every token of an XML document with encoding/xml, which
// rejects mismatched or unclosed elements that gofeed silently accepts.
func scanMarkup(doc []byte) (*outline, error) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		o         outline
		stack     []xml.Name
		itemDepth = -1
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth := len(stack)
			switch {
			case depth == 0:
				if o.root != "" {
					return nil, errors.New("malformed markup: more than one root element")
				}
				o.root = t.Name.Local
			case depth == 1 && t.Name.Local == "channel":
				o.channel = true
			case itemDepth == -1 && t.Name.Local == "item" && isItemParent(stack):
				o.items = append(o.items, fields{})
				itemDepth = depth
			case itemDepth != -1 && depth == itemDepth+1 && rssNamespaces[t.Name.Space]:
				current := &o.items[len(o.items)-1]
				switch t.Name.Local {
				case "title":
					current.title = true
				case "description":
					current.description = true
				case "link":
					current.link = true
				}
			}
			stack = append(stack, t.Name)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == itemDepth {
				itemDepth = -1
			}
		}
	}

	if o.root == "" {
		return nil, errors.New("malformed markup: no root element")
	}
	return &o, nil
}

// isItemParent reports whether the open elements are rss > channel or rdf:RDF
func isItemParent(stack []xml.Name) bool {
	switch len(stack) {
	case 1:
		return stack[0].Local == "RDF"
	case 2:
		return stack[0].Local == "rss" && stack[1].Local == "channel"
	}
	return false
}
