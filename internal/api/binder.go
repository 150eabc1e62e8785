package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and defers to echo's default binder
// for query and path parameters.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()

	if req.ContentLength > 0 && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return fmt.Errorf("%w: read body: %s", constants.ErrBadRequest, err.Error())
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
		}

		if err := b.fallback.BindPathParams(c, i); err != nil {
			return err
		}
		return b.fallback.BindQueryParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
