package cards

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingTitle returns the text of the first level-1 heading in body, or ""
// when there is none.
func headingTitle(body string) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading && n.(*ast.Heading).Level == 1 {
			title = string(n.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(title)
}
