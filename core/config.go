package core

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		Build    string

		SecretKey    string
		RollbarToken string

		Server   ServerConfig
		API      APIConfig
		Schedule ScheduleConfig
	}

	ServerConfig struct {
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// APIConfig points at the upstream school API; all durable state lives there.
	APIConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	ScheduleConfig struct {
		// BulkInterval is the minimum pause between consecutive requests of a
		// bulk lesson mutation. It is a throttle contract with the upstream
		// API, not a tunable latency knob; keep it well above zero in PROD.
		BulkInterval time.Duration
	}
)

// NewConfig loads configuration from the environment (and an optional
// .env.<env> file) with sane DEV defaults.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "EscolaAdmin")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "x2m)dfq8$+57=kz&wpxh2(h!y)#*c9(#yg4h^$cegm2abc")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverAddr", ":8080")
	conf.SetDefault("serverDebugHost", "localhost:4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("apiBaseURL", "http://localhost:8000/api/v1")
	conf.SetDefault("apiTimeout", 0) // no client-side timeout; a hung call stalls its own flow only
	conf.SetDefault("bulkInterval", 200*time.Millisecond)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := ".env." + strings.ToLower(env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Build:        conf.GetString("build"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Addr:            conf.GetString("serverAddr"),
			DebugHost:       conf.GetString("serverDebugHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		API: APIConfig{
			BaseURL: conf.GetString("apiBaseURL"),
			Timeout: conf.GetDuration("apiTimeout"),
		},
		Schedule: ScheduleConfig{
			BulkInterval: conf.GetDuration("bulkInterval"),
		},
	}
}
