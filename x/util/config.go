package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is Taverna base configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Assistant Assistant `yaml:"assistant"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	ListenAddr    string `yaml:"listenAddr"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	EnableTrace   bool   `yaml:"enableTrace"`
}

// Assistant is the external chat-completion endpoint configuration
type Assistant struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apikey"`
	Model    string `yaml:"model"`
}

// Load loads taverna config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return nil
}
