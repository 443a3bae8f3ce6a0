package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. StorageDSN empty selects the
// JSON file backend at DataFile; otherwise it is handed to gorm (sqlite
// path or postgres DSN).
type Config struct {
	Addr          string        `env:"ADDR" env-default:":3000"`
	DataFile      string        `env:"DATA_FILE" env-default:"database.json"`
	StorageDSN    string        `env:"STORAGE_DSN" env-default:""`
	AdminUsername string        `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD" env-default:"admin123"`
	SessionSecret string        `env:"SESSION_SECRET" env-default:"devsessionsecret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"336h"`
	LogLevel      string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat     string        `env:"LOG_FORMAT" env-default:"text"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return &cfg
}
