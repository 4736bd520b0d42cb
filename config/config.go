package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the configuration for cmd/tokenheal.
type Config struct {
	Env        string `yaml:"env" env-default:"local"`
	VocabPath  string `yaml:"vocab_path" env-default:"./data/vocab.txt"`
	Alphabet   string `yaml:"alphabet" env-default:"symbol"` // "byte" or "symbol"
	MaxResults int    `yaml:"max_results" env-default:"20"`
}

// MustLoad loads the config from a YAML file (flag > env > default path),
// then applies any command-line overrides on top. It panics on failure,
// matching the fail-fast startup style this command is demonstrated with.
func MustLoad() *Config {
	configPathFlag := flag.String("config", "", "path to the config file")
	vocabPathFlag := flag.String("vocab-path", "", "path to the vocabulary file (one entry per line)")
	alphabetFlag := flag.String("alphabet", "", `alphabet mode: "byte" or "symbol"`)
	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = fetchConfigPath()
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			panic("error loading config file: " + err.Error())
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("error loading config from environment: " + err.Error())
	}

	if *vocabPathFlag != "" {
		cfg.VocabPath = *vocabPathFlag
	}
	if *alphabetFlag != "" {
		cfg.Alphabet = *alphabetFlag
	}

	return &cfg
}

// fetchConfigPath resolves the config path: an explicit flag always wins,
// otherwise CONFIG_PATH, otherwise a default path.
func fetchConfigPath() string {
	if res := os.Getenv("CONFIG_PATH"); res != "" {
		return res
	}
	return "./config/config_local.yaml"
}
