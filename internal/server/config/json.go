package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/devhub/backend/internal/flagx"
	"github.com/devhub/backend/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON config
// files. Duration fields accept both strings ("24h") and integer
// nanoseconds. After unmarshalling, values are copied into the runtime
// Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	AllowedOrigin         string         `json:"allowed_origin"`
	CookieDomain          string         `json:"cookie_domain"`
	CookieSecure          bool           `json:"cookie_secure"`
	Environment           string         `json:"environment"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is configured,
// nothing happens. Unreadable or invalid files panic: a half-applied
// config file is worse than no server.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
	config.AllowedOrigin = c.AllowedOrigin
	config.CookieDomain = c.CookieDomain
	config.CookieSecure = c.CookieSecure
	config.Environment = c.Environment
}
