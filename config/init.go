package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

// reading config error is fatal, and exists main thread
func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func setDefaults(cfg *Configuration) {
	cfg.Server.Port = 8080
	cfg.Server.CertFile = "certchain.pem"
	cfg.Server.KeyFile = "privatekey.pem"
	cfg.Server.RedisHost = "localhost"
	cfg.Server.RedisPort = 6379
	cfg.Server.ProfileTTL = 7 * 24 * 3600
	cfg.Log.Level = "info"
	cfg.Log.Dir = "logs"
	cfg.Flow.HomeChain = DEFAULT_HOME_CHAIN
	cfg.Flow.IdleTimeout = 3600
}

func readFile(cfg *Configuration, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return nil
}

func readEnv(cfg *Configuration) error {
	return envconfig.Process(ENV_PREFIX, cfg)
}

func validate(cfg *Configuration) error {
	if _, ok := Chains[cfg.Catalog().HomeChain]; !ok {
		return fmt.Errorf("home chain %q is not a supported chain", cfg.Flow.HomeChain)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Server.ProfileTTL <= 0 {
		return errors.New("profile ttl must be positive")
	}
	if cfg.Flow.IdleTimeout <= 0 {
		return errors.New("flow idle timeout must be positive")
	}
	return nil
}

// Load reads defaults, then the YAML file (a missing file is fine), then environment
func Load(path string) (*Configuration, error) {
	var cfg Configuration
	setDefaults(&cfg)

	if err := readFile(&cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := readEnv(&cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Init() {
	cfg, err := Load("config.yml")
	if err != nil {
		processError(err)
	}
	Config = *cfg
}
