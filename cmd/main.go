package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/ums-payment-service/config"
	"github.com/jeffleon2/ums-payment-service/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	myApp := &app.App{}
	if err := myApp.Initialize(cfg); err != nil {
		logrus.Fatalf("Error initializing payment service: %s", err.Error())
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("Payment service stopped with error: %s", err.Error())
	}
}
