package di

import (
	"github.com/solenik/userhub/internal/app"
	"github.com/solenik/userhub/internal/config"
	"github.com/solenik/userhub/internal/logger"
	"github.com/solenik/userhub/internal/pkg/auth"
	"github.com/solenik/userhub/internal/server/http/router"
	"github.com/solenik/userhub/internal/storage/postgres"
	"github.com/solenik/userhub/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
