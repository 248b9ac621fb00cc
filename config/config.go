package config

import "os"

// Config carries every environment-selected setting. It is loaded once in
// main and passed explicitly to constructors; nothing else reads os.Getenv.
type Config struct {
	Region string
	Local  bool

	// DynamoDB
	BillingTable   string
	UserInfoTable  string
	DynamoEndpoint string

	// S3
	RawFilesBucket   string
	UserAccessBucket string

	// Product catalog sidecar (sqlite file shipped with the function)
	CatalogPath string

	// CORS
	AllowedOrigin string

	// Identity provider. When Issuer is empty the API Gateway authorizer
	// upstream is trusted and only Bearer-header presence is enforced.
	OIDCIssuer   string
	OIDCClientID string
}

func Load() Config {
	cfg := Config{
		Region:           getenv("AWS_REGION", "us-east-1"),
		Local:            os.Getenv("IS_LOCAL") == "TRUE",
		BillingTable:     getenv("BILLING_TABLE_NAME", "edp_miscommit"),
		UserInfoTable:    getenv("USER_INFO_TABLE_NAME", "edp_miscommit_user_info_table"),
		DynamoEndpoint:   os.Getenv("DYNAMO_ENDPOINT"),
		RawFilesBucket:   os.Getenv("RAW_FILES_BUCKET"),
		UserAccessBucket: os.Getenv("USER_ACCESS_BUCKET"),
		CatalogPath:      getenv("CATALOG_PATH", "./catalog.sqlite"),
		AllowedOrigin:    os.Getenv("ALLOWED_ORIGIN"),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
	}
	if cfg.AllowedOrigin == "" {
		if cfg.Local {
			cfg.AllowedOrigin = "http://localhost:5173"
		} else {
			cfg.AllowedOrigin = "*"
		}
	}
	if cfg.Local && cfg.DynamoEndpoint == "" {
		cfg.DynamoEndpoint = "http://localhost:8000"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
