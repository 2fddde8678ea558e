package middleware

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const flashSession = "xestetik_flash"

// Flash categories understood by the layout template
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message carried across a redirect
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// Sessions installs the signed cookie store that carries flash messages
func Sessions(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Middleware(store)
}

// AddFlash queues a message for the next rendered page
func AddFlash(c echo.Context, category, message string) error {
	sess, err := session.Get(flashSession, c)
	if err != nil {
		return err
	}
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(c.Request(), c.Response())
}

// Flashes pops the queued messages. A broken or missing cookie yields none.
func Flashes(c echo.Context) []Flash {
	sess, err := session.Get(flashSession, c)
	if err != nil {
		zap.L().Debug("flash session unreadable", zap.Error(err))
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.L().Debug("flash session not saved", zap.Error(err))
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
