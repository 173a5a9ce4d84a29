package grpc

import "fmt"

type Config struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func (c *Config) url() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
