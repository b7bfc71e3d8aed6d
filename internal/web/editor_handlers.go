package web

import (
	"net/http"

	"github.com/evcraddock/message-part/internal/content"
	"github.com/evcraddock/message-part/internal/part"
)

type editorData struct {
	Part   *content.Part
	Field  string
	Notice string
}

// handleEditor serves the editor surface. GET opens a fresh session and
// pre-fills the form; POST is a submission that saves the posted value.
// The "save" action closes the editor, "apply" keeps it open.
func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookupPart(w, r)
	if !ok {
		return
	}

	ed := part.NewEditor(s.parts.Store(p.ID))
	fresh := isFreshEntry(r)

	if !fresh {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		ed.Field = r.PostFormValue("message")
	}

	if err := ed.Open(r.Context(), fresh); err != nil {
		s.serverError(w, r, "loading message", err)
		return
	}

	if fresh {
		s.render(w, "editor.html", editorData{Part: p, Field: ed.Field})
		return
	}

	closing := r.PostFormValue("action") == "save"
	saved, err := ed.Save(r.Context(), closing)
	if err != nil {
		s.serverError(w, r, "saving message", err)
		return
	}

	if saved && closing {
		http.Redirect(w, r, displayPath(p.ID), http.StatusSeeOther)
		return
	}

	data := editorData{Part: p, Field: ed.Field}
	if saved {
		data.Notice = "Saved"
	}
	s.render(w, "editor.html", data)
}
