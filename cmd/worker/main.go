package main

import (
	"encoding/json"

	"backtestcontrol/internal/backtest"
	"backtestcontrol/internal/stats"
	"backtestcontrol/pkg/config"

	logrus "github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	// Create consumer for the completed-run queue
	msgConsumer, err := config.NewConsumer(backtest.ResultsQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Backtest stats worker started, waiting for messages...")

	// Start consuming messages
	err = msgConsumer.Consume(func(msg []byte) error {
		var event backtest.RunCompletedEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			logrus.Errorf("Failed to unmarshal message: %v", err)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"run_id":       event.RunID,
			"strategy":     event.Strategy,
			"status":       event.Status,
			"total_return": event.TotalReturn,
			"win_rate":     event.WinRate,
			"total_trades": event.TotalTrades,
		}).Info("Received completed run")

		if err := stats.RecomputeStrategy(config.DB, event.Strategy); err != nil {
			logrus.Errorf("Failed to update stats for %s: %v", event.Strategy, err)
			return err
		}
		return nil
	})
	if err != nil {
		logrus.Fatal("Consumer stopped: ", err)
	}
}
