package config

import (
	"errors"
	"os"

	"github.com/ardanlabs/conf"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort     string `yaml:"server_port" conf:"env:SERVER_PORT"`
	DBUsername     string `yaml:"db_username" conf:"env:DB_USERNAME"`
	DBPassword     string `yaml:"db_password" conf:"env:DB_PASSWORD,noprint"`
	DBHost         string `yaml:"db_host" conf:"env:DB_HOST"`
	DBPort         string `yaml:"db_port" conf:"env:DB_PORT"`
	DBName         string `yaml:"db_name" conf:"env:DB_NAME"`
	DisableTLS     bool   `yaml:"disable_tls" conf:"env:DB_DISABLE_TLS"`
	RedisAddr      string `yaml:"redis_addr" conf:"env:REDIS_ADDR"`
	RedisPassword  string `yaml:"redis_password" conf:"env:REDIS_PASSWORD,noprint"`
	PrivateKeyPath string `yaml:"private_key_path" conf:"env:PRIVATE_KEY_PATH"`
	MediaBasePath  string `yaml:"media_base_path" conf:"env:MEDIA_BASE_PATH"`
}

// NewConfig resolves configuration with env/flags (via conf) taking precedence
// over config.yaml, and fixed fallbacks last.
func NewConfig() (*Config, error) {
	var c Config

	if err := conf.Parse(os.Args[1:], "HRM", &c); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, uerr := conf.Usage("HRM", &c)
			if uerr != nil {
				return nil, uerr
			}
			return nil, errors.New(usage)
		}
		return nil, err
	}

	if yamlFile, err := os.ReadFile("config.yaml"); err == nil {
		var file Config
		if err = yaml.Unmarshal(yamlFile, &file); err != nil {
			return nil, err
		}
		c.merge(file)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.PrivateKeyPath == "" {
		c.PrivateKeyPath = "./private.pem"
	}
	if c.MediaBasePath == "" {
		c.MediaBasePath = "./media"
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	return &c, nil
}

// merge fills fields the environment left empty from the yaml file.
func (c *Config) merge(file Config) {
	if c.ServerPort == "" {
		c.ServerPort = file.ServerPort
	}
	if c.DBUsername == "" {
		c.DBUsername = file.DBUsername
	}
	if c.DBPassword == "" {
		c.DBPassword = file.DBPassword
	}
	if c.DBHost == "" {
		c.DBHost = file.DBHost
	}
	if c.DBPort == "" {
		c.DBPort = file.DBPort
	}
	if c.DBName == "" {
		c.DBName = file.DBName
	}
	if !c.DisableTLS {
		c.DisableTLS = file.DisableTLS
	}
	if c.RedisAddr == "" {
		c.RedisAddr = file.RedisAddr
	}
	if c.RedisPassword == "" {
		c.RedisPassword = file.RedisPassword
	}
	if c.PrivateKeyPath == "" {
		c.PrivateKeyPath = file.PrivateKeyPath
	}
	if c.MediaBasePath == "" {
		c.MediaBasePath = file.MediaBasePath
	}
}
