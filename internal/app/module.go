package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/otpvault/internal/vault"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.vault.enabled") {
		if err := vault.New(vault.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			CacheConn:  a.cacheConn,
			Goroutine:  a.goroutine,
			Router:     a.router,
			Messaging:  a.messaging,
			Pacer:      a.pacer,
			Config:     a.config,
			Instrument: a.ins,
			Clock:      a.clock,
			Totp:       a.totp,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module vault", "error", err)
			os.Exit(1)
		}
	}
}
