package fireauth

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/knaeeim/Bangla-Drop-Server/internal/config"
)

// Module exposes the token verifier implementation to the fx graph.
var Module = fx.Provide(newVerifier)

type verifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newVerifier(p verifierParams) (Verifier, error) {
	return New(p.Ctx, p.Config.FirebaseCredentialsFile, p.Logger)
}
