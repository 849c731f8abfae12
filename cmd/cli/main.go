package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/tradingprofessor/internal/buildinfo"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/cli"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/config"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}, os.Stderr)
	log.Info(ctx, "starting", "api", cfg.APIBaseURL, "admin", cfg.AdminToken != "")

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
