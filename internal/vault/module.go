package vault

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/otpvault/internal/pkg/clock"
	"github.com/shandysiswandi/otpvault/internal/pkg/config"
	"github.com/shandysiswandi/otpvault/internal/pkg/goroutine"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/pkg/messaging"
	"github.com/shandysiswandi/otpvault/internal/pkg/pacing"
	"github.com/shandysiswandi/otpvault/internal/pkg/router"
	"github.com/shandysiswandi/otpvault/internal/pkg/totp"
	"github.com/shandysiswandi/otpvault/internal/pkg/validator"
	"github.com/shandysiswandi/otpvault/internal/vault/inbound"
	"github.com/shandysiswandi/otpvault/internal/vault/outbound/db"
	"github.com/shandysiswandi/otpvault/internal/vault/usecase"
)

type Dependency struct {
	Ctx        context.Context
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Pacer      pacing.Pacer               `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       totp.Generator             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	ctx := dep.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	dbVault := db.NewDB(dep.DBConn, dep.Instrument)
	if err := dbVault.EnsureSchema(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbVault,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Totp:       dep.Totp,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	if dep.Ctx != nil && dep.Config.GetBool("modules.vault.consumer_enabled") {
		processor := inbound.NewProcessor(uc, dep.Instrument)
		consumer := inbound.NewConsumer(dep.Messaging, processor, dep.Pacer, inbound.ConsumerConfig{
			Subject:      dep.Config.GetString("modules.vault.command_subject"),
			ReplySubject: dep.Config.GetString("modules.vault.reply_subject"),
			Queue:        dep.Config.GetString("modules.vault.consumer_queue"),
			Concurrency:  int(dep.Config.GetInt32("modules.vault.consumer_concurrency")),
		}, dep.Instrument)

		dep.Goroutine.Go(dep.Ctx, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "Running job for handling command consumer")
			return consumer.Run(pCtx)
		})
	}

	return nil
}
