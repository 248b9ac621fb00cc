package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("IS_LOCAL", "")
	cfg := Load()
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "edp_miscommit", cfg.BillingTable)
	assert.Equal(t, "edp_miscommit_user_info_table", cfg.UserInfoTable)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.False(t, cfg.Local)
}

func TestLoadLocalDefaults(t *testing.T) {
	t.Setenv("IS_LOCAL", "TRUE")
	t.Setenv("ALLOWED_ORIGIN", "")
	t.Setenv("DYNAMO_ENDPOINT", "")
	cfg := Load()
	assert.True(t, cfg.Local)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoEndpoint)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("BILLING_TABLE_NAME", "billing-test")
	t.Setenv("RAW_FILES_BUCKET", "raw-test")
	t.Setenv("OIDC_ISSUER", "https://cognito-idp.eu-west-1.amazonaws.com/pool")
	cfg := Load()
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "billing-test", cfg.BillingTable)
	assert.Equal(t, "raw-test", cfg.RawFilesBucket)
	assert.Equal(t, "https://cognito-idp.eu-west-1.amazonaws.com/pool", cfg.OIDCIssuer)
}
