// Package secrets reads the single admin identity from AWS Secrets
// Manager. The secret is a JSON document:
//
//	{"username": ..., "password_hash": <sha256 hex>, "jwt_secret": ...}
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"jobportal/internal/usecase/auth"
)

type SecretsManagerStore struct {
	client   *secretsmanager.Client
	secretID string
}

func NewSecretsManagerStore(ctx context.Context, region, secretID string) (*SecretsManagerStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &SecretsManagerStore{
		client:   secretsmanager.NewFromConfig(cfg),
		secretID: secretID,
	}, nil
}

func (s *SecretsManagerStore) AdminCredentials(ctx context.Context) (auth.Credentials, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: awssdk.String(s.secretID),
	})
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("get admin credentials secret: %w", err)
	}
	if out.SecretString == nil {
		return auth.Credentials{}, fmt.Errorf("admin credentials secret has no string value")
	}

	var creds auth.Credentials
	if err := json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return auth.Credentials{}, fmt.Errorf("decode admin credentials secret: %w", err)
	}
	if creds.Username == "" || creds.PasswordHash == "" || creds.JWTSecret == "" {
		return auth.Credentials{}, fmt.Errorf("admin credentials secret is incomplete")
	}
	return creds, nil
}
