package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Auth   auth
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// auth holds the knobs of the login/register rate limiter.
type auth struct {
	LoginRPS   float64 `env:"AUTH_LOGIN_RPS"`
	LoginBurst int     `env:"AUTH_LOGIN_BURST"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("AUTH_LOGIN_RPS", 1.0)
	viper.SetDefault("AUTH_LOGIN_BURST", 5)

	config := Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Auth: auth{
			LoginRPS:   viper.GetFloat64("AUTH_LOGIN_RPS"),
			LoginBurst: viper.GetInt("AUTH_LOGIN_BURST"),
		},
	}

	if config.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is not set")
	}

	return &config
}
