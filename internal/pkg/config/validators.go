// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator"
)

// placeholderPrefix marks values that a deployment template never filled in
const placeholderPrefix = "MISSING_"

// rule checks one aspect of a loaded configuration
type rule func(*Config) error

var (
	baseRules       = []rule{checkTags, checkUpstream}
	productionRules = []rule{checkProductionUpstream, checkProductionSecurity, checkTLS}
)

var tags = mustTagValidator()

func newTagValidator() (*validator.Validate, error) {
	v := validator.New()
	// "set" is required plus not a template placeholder
	err := v.RegisterValidation("set", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && !strings.HasPrefix(s, placeholderPrefix)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register set validation: %w", err)
	}
	return v, nil
}

func mustTagValidator() *validator.Validate {
	v, err := newTagValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// checkTags runs the validate struct tags and reports the first failure
func checkTags(cfg *Config) error {
	err := tags.Struct(cfg)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	name := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "set", "required":
		return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, name)
	case "gt":
		return fmt.Errorf("%s must be greater than %s", name, fe.Param())
	default:
		return fmt.Errorf("%s failed %q validation", name, fe.Tag())
	}
}

func checkUpstream(cfg *Config) error {
	switch cfg.Upstream.Mode {
	case UpstreamMemory:
		return nil
	case UpstreamHTTP:
	default:
		return fmt.Errorf("unknown upstream mode %q", cfg.Upstream.Mode)
	}

	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("%w: Upstream.BaseURL", ErrMissingRequiredConfig)
	}
	if _, err := url.ParseRequestURI(cfg.Upstream.BaseURL); err != nil {
		return fmt.Errorf("invalid upstream base URL: %w", err)
	}
	return nil
}

func checkProductionUpstream(cfg *Config) error {
	if cfg.Upstream.Mode != UpstreamHTTP {
		return fmt.Errorf("upstream mode must be %q in production", UpstreamHTTP)
	}
	if !strings.HasPrefix(cfg.Upstream.BaseURL, "https://") {
		return errors.New("upstream base URL must use https in production")
	}
	if strings.HasPrefix(cfg.Upstream.ServiceToken, placeholderPrefix) {
		return fmt.Errorf("%w: Upstream.ServiceToken", ErrMissingRequiredConfig)
	}
	return nil
}

func checkProductionSecurity(cfg *Config) error {
	if !cfg.Security.SecureHeaders {
		return errors.New("secure headers must be enabled in production")
	}
	if len(cfg.Security.AllowedOrigins) == 0 {
		return errors.New("allowed origins must be configured in production")
	}
	if slices.Contains(cfg.Security.AllowedOrigins, "*") {
		return errors.New("wildcard origin (*) not allowed in production")
	}
	return nil
}

func checkTLS(cfg *Config) error {
	if cfg.Server.TLSEnabled && (cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "") {
		return errors.New("TLS cert and key files must be provided when TLS is enabled")
	}
	return nil
}
