package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

const EnvPrefix = "APPTECNICO"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Mail     MailConfig     `mapstructure:"mail"`
	Geo      GeoConfig      `mapstructure:"geo"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s ServerConfig) Debug() bool {
	return s.Mode == "debug"
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// TablesConfig holds one DynamoDB table name per entity.
type TablesConfig struct {
	Budgets         string `mapstructure:"budgets"`
	ServiceOrders   string `mapstructure:"service_orders"`
	Products        string `mapstructure:"products"`
	ServiceCalls    string `mapstructure:"service_calls"`
	Appointments    string `mapstructure:"appointments"`
	ExpensesConfigs string `mapstructure:"expenses_configs"`
	Payments        string `mapstructure:"payments"`
}

// PaymentsConfig configures Mercado Pago. The test payer fields only apply to
// sandbox tokens (prefixed "TEST-").
type PaymentsConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

// AuthConfig verifies tokens issued by the external identity provider.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Disabled  bool   `mapstructure:"disabled"`
}

type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// GeoConfig is the fallback position used when a request carries no coordinates.
type GeoConfig struct {
	DefaultLatitude  float64 `mapstructure:"default_latitude"`
	DefaultLongitude float64 `mapstructure:"default_longitude"`
}

type CalendarConfig struct {
	ConflictPolicy string `mapstructure:"conflict_policy"`
	Timezone       string `mapstructure:"timezone"`
}

// Location resolves Timezone, falling back to UTC.
func (c CalendarConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] unknown timezone=%s, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// legacyEnv keeps the plain variable names used by docker-compose files working.
var legacyEnv = map[string]string{
	"aws.region":                  "AWS_REGION",
	"aws.endpoint":                "DYNAMODB_ENDPOINT",
	"aws.access_key_id":           "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":       "AWS_SECRET_ACCESS_KEY",
	"payments.access_token":       "MERCADOPAGO_ACCESS_TOKEN",
	"payments.mock":               "PAYMENT_GATEWAY_MOCK",
	"payments.test_payer_email":   "MERCADOPAGO_TEST_PAYER_EMAIL",
	"payments.test_payer_user_id": "MERCADOPAGO_TEST_PAYER_USER_ID",
}

// Load reads the embedded defaults, merges an external config file when one is
// found and applies environment overrides.
//
// Precedence: APPTECNICO_* env > legacy env > external file > embedded defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		log.Printf("[config] merged config file=%s", configPath)
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/apptecnico")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				return nil, fmt.Errorf("merge config file %s: %w", external.ConfigFileUsed(), err)
			}
			log.Printf("[config] merged config file=%s", external.ConfigFileUsed())
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	return &cfg, nil
}

// MustLoad is Load for process startup.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("[config] load failed err=%v", err)
	}
	return cfg
}

// SafeErrorMessage hides internal error details outside debug mode.
func (c *Config) SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if c == nil || c.Server.Debug() {
		return err.Error()
	}
	return fallback
}
