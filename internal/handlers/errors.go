package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler renders HTML error pages in place of echo's JSON errors
type ErrorHandler struct {
	pages *Pages
}

func NewErrorHandler(pages *Pages) *ErrorHandler {
	return &ErrorHandler{pages: pages}
}

// Handle is installed as echo's HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		h.write(c, c.NoContent(code))
		return
	}

	switch {
	case code == http.StatusNotFound:
		h.write(c, h.pages.RenderStatus(c, code, "404.html", h.pages.Title("Nie znaleziono"), nil))
	case code >= http.StatusInternalServerError:
		h.write(c, h.pages.RenderStatus(c, code, "500.html", h.pages.Title("Błąd"), nil))
	default:
		h.write(c, c.String(code, http.StatusText(code)))
	}
}

func (h *ErrorHandler) write(c echo.Context, err error) {
	if err == nil {
		return
	}
	zap.L().Error("error page failed", zap.Error(err))
	if !c.Response().Committed {
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
