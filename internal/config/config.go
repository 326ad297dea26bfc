package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Timezone   string     `yaml:"timezone" env:"TIMEZONE" env-default:"UTC"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	Upload     Upload     `yaml:"upload"`
	Mail       Mail       `yaml:"mail"`
	Queue      Queue      `yaml:"queue"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"meetapp"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	BaseURL     string        `yaml:"base_url" env:"HTTP_BASE_URL" env-default:"http://localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"168h"`
	BcryptCost int           `yaml:"bcrypt_cost" env-default:"10"`
}

type Upload struct {
	Dir     string `yaml:"dir" env:"UPLOAD_DIR" env-default:"./tmp/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"5000000"`
}

type Mail struct {
	Address     string `yaml:"address" env:"SMTP_ADDRESS" env-default:"localhost:1025"`
	Username    string `yaml:"username" env:"SMTP_USERNAME"`
	Password    string `yaml:"password" env:"SMTP_PASSWORD"`
	FromName    string `yaml:"from_name" env-default:"Meetapp"`
	FromAddress string `yaml:"from_address" env-default:"noreply@meetapp.local"`
}

type Queue struct {
	Workers     int           `yaml:"workers" env-default:"2"`
	Buffer      int           `yaml:"buffer" env-default:"100"`
	TaskTimeout time.Duration `yaml:"task_timeout" env-default:"30s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err)
	}

	return cfg
}

func LoadPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, err
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fetchConfigPath prefers the --config flag over CONFIG_PATH.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
