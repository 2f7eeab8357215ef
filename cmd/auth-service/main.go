package main

import (
	"context"

	"github.com/klwxsrx/dashboard-auth/internal/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/internal/user"
	pkgcmd "github.com/klwxsrx/dashboard-auth/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := user.NewDependencyContainer(
		user.SessionConfigProvider(),
		infra.Storage,
		infra.DB,
		infra.DBMigrations,
		infra.EventDispatchers,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	infra.Logger.MustLoad().Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
