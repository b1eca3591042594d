package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	SecretKey    string `yaml:"secret_key"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AppConfig struct {
	DefaultLanguage string `yaml:"default_language"`
	RecipePageSize  int    `yaml:"recipe_page_size"`
	PlanPageSize    int    `yaml:"plan_page_size"`
	CarouselSize    int    `yaml:"carousel_size"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8080",
			SecretKey: "change_me_in_production",
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "jedzonko.db"),
		},
		App: AppConfig{
			DefaultLanguage: "pl",
			RecipePageSize:  2,
			PlanPageSize:    3,
			CarouselSize:    3,
		},
	}
}

// Load reads the yaml config file when present and applies environment
// overrides on top. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.App.RecipePageSize < 1 {
		cfg.App.RecipePageSize = Default().App.RecipePageSize
	}
	if cfg.App.PlanPageSize < 1 {
		cfg.App.PlanPageSize = Default().App.PlanPageSize
	}
	if cfg.App.CarouselSize < 1 {
		cfg.App.CarouselSize = Default().App.CarouselSize
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv("PORT"); value != "" {
		cfg.Server.Port = value
	}
	if value := os.Getenv("SECRET_KEY"); value != "" {
		cfg.Server.SecretKey = value
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		cfg.Database.Path = value
	}
	if value := os.Getenv("DEFAULT_LANGUAGE"); value != "" {
		cfg.App.DefaultLanguage = value
	}
}
