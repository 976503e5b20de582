package slicepager

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultQueryParam = "page"
	DefaultOnEachSide = 1
	DefaultEdge       = 2
)

// Config holds the paginator settings. Use DefaultConfig for sensible
// defaults; zero OnEachSide and empty QueryParam fall back to
// DefaultOnEachSide and DefaultQueryParam.
type Config struct {
	// ItemsPerPage - maximum number of elements on a page (the merged last
	// page under the orphan rule may exceed it).
	ItemsPerPage int `mapstructure:"items_per_page" json:"itemsPerPage" yaml:"items_per_page" validate:"gt=0"`

	// Orphans - a trailing page with fewer elements than this is merged into
	// the previous page. Zero disables merging.
	Orphans int `mapstructure:"orphans" json:"orphans" yaml:"orphans" validate:"gte=0"`

	// RejectEmpty - refuse to paginate an empty sequence.
	RejectEmpty bool `mapstructure:"reject_empty" json:"rejectEmpty" yaml:"reject_empty"`

	// OnEachSide - number of neighbours shown on each side of the current
	// page in the page range.
	OnEachSide int `mapstructure:"on_each_side" json:"onEachSide" yaml:"on_each_side" validate:"gte=1"`

	// LeftEdge, RightEdge - number of leading and trailing pages always shown
	// by RenderPagination.
	LeftEdge  int `mapstructure:"left_edge" json:"leftEdge" yaml:"left_edge" validate:"gte=0"`
	RightEdge int `mapstructure:"right_edge" json:"rightEdge" yaml:"right_edge" validate:"gte=0"`

	// BaseURL, QueryParam - page URLs take the form "<BaseURL>?<QueryParam>=<page>".
	BaseURL    string `mapstructure:"base_url" json:"baseUrl" yaml:"base_url"`
	QueryParam string `mapstructure:"query_param" json:"queryParam" yaml:"query_param" validate:"required"`
}

// DefaultConfig returns a Config with the given page size and default
// navigation settings.
func DefaultConfig(itemsPerPage int) Config {
	return Config{
		ItemsPerPage: itemsPerPage,
		OnEachSide:   DefaultOnEachSide,
		LeftEdge:     DefaultEdge,
		RightEdge:    DefaultEdge,
		QueryParam:   DefaultQueryParam,
	}
}

var _validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report mapstructure names so errors match configuration keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

func (c Config) withDefaults() Config {
	if c.OnEachSide == 0 {
		c.OnEachSide = DefaultOnEachSide
	}
	if c.QueryParam == "" {
		c.QueryParam = DefaultQueryParam
	}

	return c
}

// Validate checks the config after applying defaults. Every returned error
// wraps ErrInvalidConfig.
func (c Config) Validate() error {
	err := _validate.Struct(c.withDefaults())
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Errorf("%w: field '%s' must satisfy '%s %s', got %v",
			ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}

// LoadConfig decodes a Config from a caller-owned viper instance. Keys not
// set in v keep the values of DefaultConfig(DefaultLimit). Pass v.Sub(key)
// to read a nested section.
//
// Usage:
//
//	v := viper.New()
//	v.SetConfigFile("app.yaml")
//	_ = v.ReadInConfig()
//	cfg, err := slicepager.LoadConfig(v.Sub("pagination"))
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, fmt.Errorf("%w: nil viper instance", ErrInvalidConfig)
	}

	cfg := DefaultConfig(DefaultLimit)
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: cannot decode config: %w", ErrInvalidConfig, err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
