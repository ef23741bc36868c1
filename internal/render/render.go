// Package render builds the panels shown at the end of a search.
package render

import (
	"bytes"
	"html/template"

	"github.com/taigrr/rikimaru/internal/types"
)

const (
	// NoResultsTitle titles the panel shown when a search has no matches.
	NoResultsTitle = "Rikimaru couldn't find what you searched for-"
	// NotFoundMessage is the body of both "nothing found" panels.
	NotFoundMessage = "No content matching your query was found using Github's search."
)

var (
	messageTmpl = template.Must(template.New("message").Parse(
		`<html>
  <head></head>
  <body>{{.}}</body>
</html>
`))

	contentTmpl = template.Must(template.New("content").Parse(
		`<html>
  <head></head>
  <body>
    <pre style="word-wrap: break-word; white-space: pre-wrap;">{{.}}</pre>
  </body>
</html>
`))
)

// FoundTitle titles a panel for the file called name.
func FoundTitle(name string) string {
	return "Rikimaru found " + name
}

// NoResults is shown when the search returned no items.
func NoResults() types.Panel {
	return types.Panel{
		Title: NoResultsTitle,
		HTML:  execute(messageTmpl, NotFoundMessage),
		Text:  NotFoundMessage,
	}
}

// NotFound is shown when a selected file has no downloadable content.
func NotFound(name string) types.Panel {
	return types.Panel{
		Title: FoundTitle(name),
		HTML:  execute(messageTmpl, NotFoundMessage),
		Text:  NotFoundMessage,
	}
}

// Content renders raw file text in a preformatted, word-wrapped block.
// The text is HTML-escaped so it displays verbatim.
func Content(name, raw string) types.Panel {
	return types.Panel{
		Title: FoundTitle(name),
		HTML:  execute(contentTmpl, raw),
		Text:  raw,
	}
}

func execute(t *template.Template, data string) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
