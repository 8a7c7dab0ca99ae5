package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/stripe"
	"github.com/knaeeim/Bangla-Drop-Server/internal/config"
	"github.com/knaeeim/Bangla-Drop-Server/internal/domain/repository"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/handlers"
	"github.com/knaeeim/Bangla-Drop-Server/internal/storage/mongodb"
	testhelpers "github.com/knaeeim/Bangla-Drop-Server/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// graphOverrides swaps every external edge of the container for in-memory
// stand-ins so the full dependency graph can be validated without a
// database, credentials file, or gateway key.
func graphOverrides() fx.Option {
	return fx.Options(
		fx.Replace(&config.Config{
			RunAddress:      "127.0.0.1:0",
			DatabaseURI:     "mongodb://localhost:27017",
			DatabaseName:    "banglaDrop",
			StripeSecretKey: "sk_test_stub",
			ShutdownTimeout: time.Second,
		}),
		fx.Replace(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		fx.Replace(&mongodb.Storage{}),
		fx.Replace(fx.Annotate(testhelpers.NewUserRepositoryStub(), fx.As(new(repository.UserRepository)))),
		fx.Replace(fx.Annotate(testhelpers.NewParcelRepositoryStub(), fx.As(new(repository.ParcelRepository)))),
		fx.Replace(fx.Annotate(&testhelpers.PaymentRepositoryStub{}, fx.As(new(repository.PaymentRepository)))),
		fx.Replace(fx.Annotate(&testhelpers.RiderRepositoryStub{}, fx.As(new(repository.RiderRepository)))),
		fx.Replace(fx.Annotate(&testhelpers.VerifierStub{}, fx.As(new(fireauth.Verifier)))),
		fx.Replace(fx.Annotate(&testhelpers.IntentClientStub{}, fx.As(new(stripe.Client)))),
	)
}

func TestModuleGraphResolves(t *testing.T) {
	var facade handlers.DeliveryFacade
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(graphOverrides()),
		fx.Populate(&facade),
	)

	if err := app.Err(); err != nil {
		t.Fatalf("dependency graph failed to resolve: %v", err)
	}
	if facade == nil {
		t.Fatal("expected a populated facade")
	}
}

func TestModuleStartStop(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(graphOverrides()),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("dependency graph failed to resolve: %v", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		t.Fatalf("start: %v", err)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
