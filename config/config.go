package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// BaseConfig is the application configuration tree, loaded from
// config/app.json with environment overrides.
type BaseConfig struct {
	App         App         `json:"app" koanf:"app"`
	Server      Server      `json:"server" koanf:"server"`
	Auth        Auth        `json:"auth" koanf:"auth"`
	Persistence Persistence `json:"persistence" koanf:"persistence"`
}

func (c *BaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Auth),
		validation.Field(&c.Server),
		validation.Field(&c.Persistence),
	)
}

func (c *BaseConfig) GetApp() App {
	return c.App
}

func (c *BaseConfig) GetServer() Server {
	return c.Server
}

func (c *BaseConfig) GetAuth() Auth {
	return c.Auth
}

func (c *BaseConfig) GetPersistence() Persistence {
	return c.Persistence
}

type App struct {
	Name  string `json:"name" koanf:"name"`
	Env   string `json:"env" koanf:"env"`
	Debug bool   `json:"debug" koanf:"debug"`
}

func (a App) GetName() string {
	return a.Name
}

func (a App) GetEnv() string {
	return a.Env
}

func (a App) GetDebug() bool {
	return a.Debug
}

type Server struct {
	Addr string `json:"addr" koanf:"addr"`
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Addr, validation.Required),
	)
}

func (s Server) GetAddr() string {
	return s.Addr
}

// Auth carries the token signing configuration. It satisfies the
// authentication package's Config interface.
type Auth struct {
	SigningKey      string   `json:"signing_key" koanf:"signing_key"`
	SigningMethod   string   `json:"signing_method" koanf:"signing_method"`
	ContextKey      string   `json:"context_key" koanf:"context_key"`
	TokenExpiration int      `json:"token_expiration" koanf:"token_expiration"`
	TokenLookup     string   `json:"token_lookup" koanf:"token_lookup"`
	AuthScheme      string   `json:"auth_scheme" koanf:"auth_scheme"`
	Issuer          string   `json:"issuer" koanf:"issuer"`
	Audience        []string `json:"audience" koanf:"audience"`
}

func (a Auth) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SigningKey, validation.Required, validation.Length(32, 0)),
		validation.Field(&a.TokenExpiration, validation.Required, validation.Min(1)),
	)
}

func (a Auth) GetSigningKey() string {
	return a.SigningKey
}

func (a Auth) GetSigningMethod() string {
	return a.SigningMethod
}

func (a Auth) GetContextKey() string {
	return a.ContextKey
}

// GetTokenExpiration is the token lifetime in hours
func (a Auth) GetTokenExpiration() int {
	return a.TokenExpiration
}

func (a Auth) GetTokenLookup() string {
	return a.TokenLookup
}

func (a Auth) GetAuthScheme() string {
	return a.AuthScheme
}

func (a Auth) GetIssuer() string {
	return a.Issuer
}

func (a Auth) GetAudience() []string {
	return a.Audience
}

type Persistence struct {
	Debug                 bool   `json:"debug" koanf:"debug"`
	Driver                string `json:"driver" koanf:"driver"`
	DSN                   string `json:"dsn" koanf:"dsn"`
	PingTimeoutExpression string `json:"ping_timeout" koanf:"ping_timeout"`
}

func (p Persistence) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.DSN, validation.Required),
	)
}

func (p Persistence) GetDebug() bool {
	return p.Debug
}

func (p Persistence) GetDriver() string {
	return p.Driver
}

func (p Persistence) GetDSN() string {
	return p.DSN
}

func (p Persistence) GetServer() string {
	return p.DSN
}

func (p Persistence) GetOtelIdentifier() string {
	return ""
}

func (p Persistence) GetPingTimeout() time.Duration {
	dur, err := time.ParseDuration(p.PingTimeoutExpression)
	if err != nil {
		panic(
			fmt.Sprintf("unable to parse time: expr %s", p.PingTimeoutExpression),
		)
	}
	return dur
}
