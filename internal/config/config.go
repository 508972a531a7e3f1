package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type AuthConfig struct {
	BcryptCost      int `yaml:"bcrypt_cost"`
	TokenLength     int `yaml:"token_length"`
	TokenTTLMinutes int `yaml:"token_ttl_minutes"`
}

type ChecksConfig struct {
	MaxPerAccount int `yaml:"max_per_account"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Auth   AuthConfig   `yaml:"auth"`
	Checks ChecksConfig `yaml:"checks"`
}

func LoadConfig() *Config {
	cfg := &Config{}

	f, err := os.Open("config/config.yaml")
	if err != nil {
		// без файла работаем на дефолтах
		log.Printf("config: config/config.yaml not found, using defaults: %v", err)
	} else {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			panic("Failed to parse config.yaml: " + err.Error())
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./.data"
	}
	if cfg.Auth.TokenLength == 0 {
		cfg.Auth.TokenLength = 20
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 60
	}
	if cfg.Checks.MaxPerAccount == 0 {
		cfg.Checks.MaxPerAccount = 5
	}
	return cfg
}
