package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds process-level settings. The database URI is the only hard
// requirement at start; an absent payment key or token secret degrades
// just the endpoints that need them.
type Config struct {
	Port          string `envconfig:"PORT" default:"5000"`
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	DBName        string `envconfig:"DB_NAME" default:"realstate"`
	TokenSecret   string `envconfig:"ACCESS_TOKEN_SECRET"`
	PaymentSecret string `envconfig:"PAYMENT_SECRET_KEY"`
	LogFile       string `envconfig:"LOG_FILE" default:"./logs/app.log"`
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
