package main

import (
	"flag"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(cfg.Log.Level)
	logrus.Info("expense-server starting")
	logger.Debug(spew.Sdump(cfg))

	dbStorage := storage.NewStorage(cfg)
	svc := service.NewService(dbStorage)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    cfg.HTTP.Port,
		Service: svc,
	}
	httpRest.Serve()
}
