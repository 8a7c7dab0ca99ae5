package mongodb

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/knaeeim/Bangla-Drop-Server/internal/config"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
)

// Module wires MongoDB storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ParcelRepository { return s.Parcels() },
		func(s *Storage) repository.PaymentRepository { return s.Payments() },
		func(s *Storage) repository.RiderRepository { return s.Riders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.DatabaseName, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close(ctx)
		},
	})
}
