package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/db"
	"github.com/nelmak/billquest/ingest"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.Info("user info updater cold start")

	cfg := config.Load()
	upd := ingest.NewUserInfoUpdater(db.New(cfg), ingest.NewObjectStore(cfg), log)
	lambda.Start(upd.HandleEvent)
}
