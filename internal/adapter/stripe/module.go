package stripe

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/knaeeim/Bangla-Drop-Server/internal/config"
)

// Module exposes the payment gateway client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewAPIClient(p.Config.StripeSecretKey, p.Logger)
}
