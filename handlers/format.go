package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oaiiae/huma-contacts/views"
)

// HTMLContentType is the key of [HTMLFormat] in [huma.Config.Formats].
const HTMLContentType = "text/html"

// HTMLFormat lets browsers negotiate HTML responses. Error models render as
// an error page, any other value as its indented JSON inside a page.
var HTMLFormat = huma.Format{ //nolint: gochecknoglobals // like huma.DefaultJSONFormat
	Marshal: func(w io.Writer, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}

		var problem struct {
			Status int    `json:"status"`
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		if json.Unmarshal(b, &problem) == nil && problem.Status != 0 {
			return views.Write(w, views.RenderError(problem.Status, problem.Title, problem.Detail))
		}

		var indented bytes.Buffer
		if err := json.Indent(&indented, b, "", "  "); err != nil {
			return err
		}
		return views.Write(w, views.RenderPre(views.DefaultTitle, indented.String()))
	},
	Unmarshal: func([]byte, any) error {
		return errors.New("html request bodies are not supported")
	},
}
