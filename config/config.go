package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Auth      AuthConfigs
	Redis     RedisConfigs
	RateLimit RateLimitConfigs
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	AllowedOrigin string
	DefaultLimit  int
	MaxLimit      int
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs

	BcryptCost int

	// ModeratorReputation is the minimum reputation granting moderator
	// rights. A stand-in for a real role system.
	ModeratorReputation int
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr     string
	Password string
}

// RateLimitConfigs holds one limiter definition per concern. The defaults
// follow the environment, but an operator can override them with a toml file.
type RateLimitConfigs struct {
	Auth   LimiterConfigs `toml:"auth"`
	Api    LimiterConfigs `toml:"api"`
	Post   LimiterConfigs `toml:"post"`
	Search LimiterConfigs `toml:"search"`
	Upload LimiterConfigs `toml:"upload"`
}

type LimiterConfigs struct {
	Window Duration `toml:"window"`
	Max    int      `toml:"max"`
}

// Duration wraps time.Duration so toml files can spell windows as "15m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// LoadFile overrides the limiter definitions with the content of a toml file.
func (c *RateLimitConfigs) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("cannot decode rate limit config %s: %w", path, err)
	}

	return nil
}

func DefaultRateLimit() RateLimitConfigs {
	return RateLimitConfigs{
		Auth:   LimiterConfigs{Window: Duration{15 * time.Minute}, Max: 20},
		Api:    LimiterConfigs{Window: Duration{time.Minute}, Max: 100},
		Post:   LimiterConfigs{Window: Duration{time.Minute}, Max: 10},
		Search: LimiterConfigs{Window: Duration{time.Minute}, Max: 30},
		Upload: LimiterConfigs{Window: Duration{time.Minute}, Max: 5},
	}
}
