package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/router"

	"go.uber.org/zap"
)

// NotFoundView is the single fallback arm for unrecognized view names.
type NotFoundView struct {
	out io.Writer
	log *zap.Logger
}

func NewNotFoundView(out io.Writer, log *zap.Logger) *NotFoundView {
	return &NotFoundView{
		out: out,
		log: log.With(zap.String("view", "not_found")),
	}
}

func (v *NotFoundView) Activate(ctx context.Context, route router.NotFoundRoute, tok router.Token) {
	v.log.Warn("Unknown view requested", zap.String("requested", route.Requested))
	fmt.Fprintln(v.out, "404 Page Not Found")
}
