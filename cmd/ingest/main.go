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
	log.Info("ingest cold start")

	cfg := config.Load()
	ing := ingest.NewBillingIngestor(db.New(cfg), ingest.NewObjectStore(cfg), log)
	lambda.Start(ing.HandleEvent)
}
