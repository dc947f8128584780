package generator

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/storozhukBM/ringgen"
)

const (
	EnvPreset  = "RINGGEN_PRESET"
	EnvName    = "RINGGEN_NAME"
	EnvType    = "RINGGEN_TYPE"
	EnvPackage = "RINGGEN_PACKAGE"
	EnvMark    = "RINGGEN_MARK"
)

// Config holds defaults for the command line flags.
// Env records every variable that replaced a built-in default.
type Config struct {
	Preset    string
	Name      string
	ElemType  string
	Package   string
	MarkEvery int
	Env       map[string]string
}

// LoadConfig reads defaults from the RINGGEN_* environment variables, after
// loading envFiles into the environment. No file is read when envFiles is empty.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("can't load env file: %v", err)
		}
	}

	cfg := Config{Env: map[string]string{}}
	cfg.Preset = cfg.getEnvOrDefault(EnvPreset, ringgen.DefaultPreset)
	cfg.Name = cfg.getEnvOrDefault(EnvName, DefaultName)
	cfg.ElemType = cfg.getEnvOrDefault(EnvType, DefaultElemType)
	cfg.Package = cfg.getEnvOrDefault(EnvPackage, DefaultPackage)
	if markStr := cfg.getEnvOrDefault(EnvMark, ""); markStr != "" {
		markEvery, parseErr := strconv.Atoi(markStr)
		if parseErr != nil {
			return Config{}, fmt.Errorf("can't parse %v=%q: %v", EnvMark, markStr, parseErr)
		}
		cfg.MarkEvery = markEvery
	}
	return cfg, nil
}

func (c *Config) getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		c.Env[key] = value
		return value
	}
	return defaultValue
}
