// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"golang.org/x/sync/singleflight"
)

// documentTTL is how long a fetched secret document is reused
const documentTTL = 5 * time.Minute

// SecretSource looks up a named secret value
type SecretSource interface {
	Lookup(ctx context.Context, key string) (string, error)
}

// secretValueGetter is the slice of the Secrets Manager client in use
type secretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerSource reads keys from one JSON secret document in AWS
// Secrets Manager. The document is fetched at most once per documentTTL.
type SecretsManagerSource struct {
	client     secretValueGetter
	secretName string
	logger     *slog.Logger

	group     singleflight.Group
	mu        sync.RWMutex
	document  map[string]string
	fetchedAt time.Time
}

// EnvSource reads secrets from the process environment
type EnvSource struct{}

var (
	_ SecretSource = (*SecretsManagerSource)(nil)
	_ SecretSource = EnvSource{}
)

// NewSecretSource picks Secrets Manager when a token secret is configured
// and the environment otherwise. Static AWS credentials are used when both
// keys are set, the default chain otherwise.
func NewSecretSource(ctx context.Context, cfg *Config, logger *slog.Logger) (SecretSource, error) {
	if cfg.Upstream.TokenSecretName == "" {
		return EnvSource{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWS.Region)}
	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newSecretsManagerSource(secretsmanager.NewFromConfig(awsCfg), cfg.Upstream.TokenSecretName, logger), nil
}

func newSecretsManagerSource(client secretValueGetter, secretName string, logger *slog.Logger) *SecretsManagerSource {
	return &SecretsManagerSource{
		client:     client,
		secretName: secretName,
		logger:     logger.With(slog.String("component", "secrets"), slog.String("secret_name", secretName)),
	}
}

func (s *SecretsManagerSource) Lookup(ctx context.Context, key string) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	val, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("secret %s has no key %s", s.secretName, key)
	}
	return val, nil
}

func (s *SecretsManagerSource) load(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	doc, fresh := s.document, time.Since(s.fetchedAt) < documentTTL
	s.mu.RUnlock()
	if doc != nil && fresh {
		return doc, nil
	}

	v, err, _ := s.group.Do(s.secretName, func() (any, error) {
		out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId:     aws.String(s.secretName),
			VersionStage: aws.String("AWSCURRENT"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get secret value: %w", err)
		}
		if out.SecretString == nil {
			return nil, fmt.Errorf("secret %s has no string value", s.secretName)
		}

		var fetched map[string]string
		if err := json.Unmarshal([]byte(*out.SecretString), &fetched); err != nil {
			return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
		}

		s.mu.Lock()
		s.document, s.fetchedAt = fetched, time.Now()
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "secret document loaded", slog.Int("keys", len(fetched)))
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}

func (EnvSource) Lookup(_ context.Context, key string) (string, error) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val, nil
	}
	return "", fmt.Errorf("environment variable %s not set", key)
}

// ResolveServiceToken fills Upstream.ServiceToken from src when a token
// secret is configured and no token was set directly.
func ResolveServiceToken(ctx context.Context, cfg *Config, src SecretSource) error {
	if cfg.Upstream.ServiceToken != "" || cfg.Upstream.TokenSecretName == "" || src == nil {
		return nil
	}

	token, err := src.Lookup(ctx, cfg.Upstream.TokenSecretKey)
	if err != nil {
		return fmt.Errorf("failed to resolve upstream service token: %w", err)
	}
	cfg.Upstream.ServiceToken = token
	return nil
}
