package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"serprank/internal/errorwrapper"
)

// ValidateConfig performs validation on the GlobalConfig structure
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Log levels understood by zerolog
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := fl.Field().String()
		if level == "" {
			return true
		}
		_, err := zerolog.ParseLevel(strings.ToLower(level))
		return err == nil
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return errorwrapper.NewValidationError(first.Namespace(), first.Value(), "failed on '"+first.Tag()+"' validation")
		}
		return errorwrapper.WrapError(err, "config validation failed")
	}

	if err := validateDelayRanges(cfg.FetcherConfig); err != nil {
		return err
	}

	return nil
}

// validateDelayRanges checks that min/max delay pairs are ordered
func validateDelayRanges(fc FetcherConfig) error {
	if fc.PreRequestDelayMaxSecs < fc.PreRequestDelayMinSecs {
		return errorwrapper.NewValidationError(
			"fetcher_config.pre_request_delay_max_secs",
			fc.PreRequestDelayMaxSecs,
			"max delay must not be below min delay",
		)
	}
	if fc.QueryDelayMaxSecs < fc.QueryDelayMinSecs {
		return errorwrapper.NewValidationError(
			"fetcher_config.query_delay_max_secs",
			fc.QueryDelayMaxSecs,
			"max delay must not be below min delay",
		)
	}
	return nil
}
