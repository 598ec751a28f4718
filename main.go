package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/tripmitra/aria-backend/assistant"
	"github.com/tripmitra/aria-backend/assistant/contract"
	configx "github.com/tripmitra/aria-backend/pkg/config"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
	openaix "github.com/tripmitra/aria-backend/pkg/openai"
	"github.com/tripmitra/aria-backend/server"
	storex "github.com/tripmitra/aria-backend/travel/store"
)

func main() {
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	storeCfg := configx.MustNew[storex.Config]("DATABASE")
	var db *bun.DB
	if storeCfg.DSN != "" {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(storeCfg.DSN)))
		db = bun.NewDB(sqldb, pgdialect.New())
	} else {
		log.Warn().Msg("no database DSN configured, serving sample data")
	}
	st := storex.New(db, storex.WithQueryTimeout(storeCfg.QueryTimeout))

	openaiCfg := configx.MustNew[openaix.Config]("OPENAI")
	var completion contract.CompletionClient
	aiConfigured := false
	if client := openaix.NewClient(*openaiCfg); client != nil {
		completion = client
		aiConfigured = true
	} else {
		log.Warn().Msg("no OpenAI API key configured, chat runs in local-template mode")
	}

	chat, err := assistant.New(st, completion)
	if err != nil {
		log.Fatal().Err(err).Msg("build assistant service")
	}

	serverCfg := configx.MustNew[server.Config]("HTTP")
	srv, err := server.New(*serverCfg, st, chat, aiConfigured)
	if err != nil {
		log.Fatal().Err(err).Msg("build http server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
