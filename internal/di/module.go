package di

import (
	"go.uber.org/fx"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/stripe"
	"github.com/knaeeim/Bangla-Drop-Server/internal/app"
	"github.com/knaeeim/Bangla-Drop-Server/internal/config"
	"github.com/knaeeim/Bangla-Drop-Server/internal/logger"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/handlers"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/router"
	"github.com/knaeeim/Bangla-Drop-Server/internal/storage/mongodb"
	"github.com/knaeeim/Bangla-Drop-Server/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		mongodb.Module,
		fireauth.Module,
		stripe.Module,
		usecase.Module,
		fx.Provide(func(client stripe.Client) app.IntentProvider { return client }),
		fx.Provide(func(facade *app.DeliveryFacade) handlers.DeliveryFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
