package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DatasetURL string
	ListenAddr string
	PageSize   int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		// .env is optional, plain environment variables work too
		_ = godotenv.Load()

		config = &Config{
			DatasetURL: os.Getenv("DATASET_URL"),
			ListenAddr: os.Getenv("LISTEN_ADDR"),
			PageSize:   0,
		}
		if config.ListenAddr == "" {
			config.ListenAddr = ":8005"
		}
		if v := os.Getenv("PAGE_SIZE"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				config.PageSize = n
			}
		}
	})
	return config
}
