package project

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// xmlNode is a generic element tree. The recent projects layouts vary too
// much between IDE releases for fixed struct tags.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
}

// parseXML decodes a single-rooted document. Trailing elements or text
// after the root are rejected.
func parseXML(r io.Reader) (*xmlNode, error) {
	dec := xml.NewDecoder(r)

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no root element")
		}
		return nil, err
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, errors.New("unexpected text after root element")
			}
		}
	}

	return &root, nil
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// pathAttr reads the path from a list option (value) or a map entry (key).
func (n *xmlNode) pathAttr() (string, bool) {
	if v, ok := n.attr("value"); ok {
		return v, true
	}
	return n.attr("key")
}

func (n *xmlNode) childrenNamed(local string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// findDescendant returns the first element below n, in document order,
// with the given local name and name attribute.
func (n *xmlNode) findDescendant(local, name string) *xmlNode {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == local {
			if v, _ := child.attr("name"); v == name {
				return child
			}
		}
		if found := child.findDescendant(local, name); found != nil {
			return found
		}
	}
	return nil
}
