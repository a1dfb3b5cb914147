package main

import (
	"os"

	"backtestcontrol/internal/stats"
	"backtestcontrol/pkg/config"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"
)

func main() {
	logger.SetFormatter(&logger.JSONFormatter{})
	logger.SetLevel(logger.InfoLevel)

	config.InitDB()

	spec := os.Getenv("STATS_CRON")
	if spec == "" {
		spec = "*/15 * * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		logger.Info("Recomputing strategy stats from recorded runs")
		if err := stats.RecomputeAll(config.DB); err != nil {
			logger.Errorf("Stats recompute failed: %v", err)
			return
		}
		logger.Info("Strategy stats recompute finished")
	})
	if err != nil {
		logger.Fatal("Failed to schedule stats job: ", err)
	}

	logger.Infof("Stats scheduler started with spec %q", spec)
	c.Run()
}
