package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nelmak/billquest/config"
	"github.com/nelmak/billquest/db"
	"github.com/nelmak/billquest/file"
	"github.com/nelmak/billquest/handler"
)

var ginLambda *ginadapter.GinLambda

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.Info("api cold start")

	cfg := config.Load()
	store := db.New(cfg)
	catalog, err := db.OpenCatalog(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("cannot open product catalog")
	}
	h := handler.New(cfg, store, store, catalog,
		file.NewLocalFileRepository(), file.NewS3Repository(cfg), log)
	auth, err := handler.NewAuthenticator(context.Background(), cfg, h)
	if err != nil {
		log.WithError(err).Fatal("cannot configure identity provider")
	}

	if !cfg.Local {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/query", h.AddCorsHeader, h.ServeQuery)
	r.OPTIONS("/query", h.AddCorsHeader, h.ServePreflight)
	r.GET("/products", h.AddCorsHeader, h.ServeProductSearch)
	r.OPTIONS("/products", h.AddCorsHeader, h.ServePreflight)
	r.GET("/user-accounts", h.AddCorsHeader, auth.RequireAuth, h.ServeUserAccounts)
	r.OPTIONS("/user-accounts", h.AddCorsHeader, h.ServePreflight)
	r.POST("/files", h.AddCorsHeader, auth.RequireAuth, h.ServeFileUpload)
	r.OPTIONS("/files", h.AddCorsHeader, h.ServePreflight)

	if cfg.Local {
		log.Fatal(http.ListenAndServe(":8080", r))
	} else {
		ginLambda = ginadapter.New(r)
		lambda.Start(Handler)
	}
}
