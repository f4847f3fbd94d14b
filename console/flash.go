package console

import (
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"vedic-admin/logger"
	"vedic-admin/template"
)

const flashSession = "vedic_flash"

// newFlashStore signs flash cookies with key. Without a key a random one is
// used, so pending flashes do not survive a restart.
func newFlashStore(key []byte) *sessions.CookieStore {
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(60)
	return store
}

// setFlash stores a one-shot message for the page after a redirect.
func (s *Server) setFlash(w http.ResponseWriter, r *http.Request, f *template.Flash) {
	session, _ := s.flashes.Get(r, flashSession)
	session.Options.MaxAge = s.flashes.Options.MaxAge
	session.AddFlash(f.Kind + "|" + f.Message)
	if err := session.Save(r, w); err != nil {
		logger.Logger.Printf("failed to save flash: %v", err)
	}
}

// popFlash returns the pending message, if any, and clears it.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) *template.Flash {
	session, err := s.flashes.Get(r, flashSession)
	if err != nil || session.IsNew {
		return nil
	}
	flashes := session.Flashes()
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		logger.Logger.Printf("failed to clear flash: %v", err)
	}
	if len(flashes) == 0 {
		return nil
	}
	raw, _ := flashes[len(flashes)-1].(string)
	kind, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &template.Flash{Kind: kind, Message: message}
}
