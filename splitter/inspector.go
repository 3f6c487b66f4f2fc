package splitter

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const commandTag = "command"

// CommandName parses fragment as an XML document and returns the text of
// the root element's direct "command" child.
func CommandName(fragment string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("%w: document has no root element", ErrParse)
	}

	cmd := root.SelectElement(commandTag)
	if cmd == nil {
		return "", ErrMissingCommand
	}

	name := strings.TrimSpace(charData(cmd))
	if name == "" {
		return "", ErrEmptyCommand
	}
	return name, nil
}

// charData concatenates the character data (CDATA included) directly inside e.
func charData(e *etree.Element) string {
	var sb strings.Builder
	for _, tok := range e.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}
