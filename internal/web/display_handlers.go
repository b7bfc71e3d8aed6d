package web

import (
	"net/http"

	"github.com/evcraddock/message-part/internal/content"
	"github.com/evcraddock/message-part/internal/part"
)

type displayData struct {
	Part *content.Part
	Text string
}

// handleDisplay serves the display surface. A POST is a postback from other
// controls on the page; the label keeps the echoed value and nothing is loaded.
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookupPart(w, r)
	if !ok {
		return
	}

	d := part.NewDisplay(s.parts.Store(p.ID))
	fresh := isFreshEntry(r)

	if !fresh {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		d.Text = r.PostFormValue("label")
	}

	if err := d.Render(r.Context(), fresh); err != nil {
		s.serverError(w, r, "loading message", err)
		return
	}

	data := displayData{Part: p, Text: d.Text}

	// If HTMX request, return just the label so host pages can embed it
	if r.Header.Get("HX-Request") == "true" {
		s.renderPartial(w, "message-partial", data)
		return
	}

	s.render(w, "display.html", data)
}
