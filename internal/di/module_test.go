package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/solenik/userhub/internal/app"
	"github.com/solenik/userhub/internal/config"
	"github.com/solenik/userhub/internal/domain/repository"
	"github.com/solenik/userhub/internal/storage/postgres"
	"github.com/solenik/userhub/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		TokenTTL:        time.Minute,
		AllowedOrigins:  []string{"http://localhost:5173"},
		BcryptCost:      4,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()

	var facade *app.AccountFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected account facade instance")
	}
}
