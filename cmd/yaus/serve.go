package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MikMuellerDev/yaus/internal/auth"
	"github.com/MikMuellerDev/yaus/internal/config"
	"github.com/MikMuellerDev/yaus/internal/db"
	"github.com/MikMuellerDev/yaus/internal/handler"
	"github.com/MikMuellerDev/yaus/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := database.Ping(); err != nil {
				return err
			}

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			urls := store.NewSQLURLStore(database)
			gate := auth.NewMiddleware(auth.Credentials{
				Username: cfg.User.Username,
				Password: cfg.User.Password,
			})

			router := handler.NewRouter(handler.Deps{
				URLs: urls,
				Gate: gate,
			})

			log.Info().Str("addr", cfg.HTTP.Addr).Msg("yaus is listening")
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
