// internal/wire/wire.go
package wire

import (
	"io"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/router"
	"travel-booking/internal/shell"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Shell *shell.Shell
}

// Wiring menginisialisasi semua dependencies
func Wiring(repos *repository.Repository, config *utils.Config, logger *zap.Logger, out io.Writer) *App {
	service := usecase.NewService(repos, config, logger)

	rt := router.New(logger)
	sh := shell.New(rt, out, logger)

	// views report back through the shell, so wiring closes the loop here
	views := adaptor.NewViews(service, rt, sh, config, out, logger)
	sh.SetViews(views)

	return &App{
		Shell: sh,
	}
}
