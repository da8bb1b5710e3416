package stream

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Config for the styletx service.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Style   string `yaml:"style"`
			Command string `yaml:"command"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Frame struct {
		Rate float64 `yaml:"rate"`
	} `yaml:"frame"`
	Element struct {
		Name  string                 `yaml:"name"`
		Style map[string]interface{} `yaml:"style"`
	} `yaml:"element"`
	Addon   string   `yaml:"addon"`
	Startup *Command `yaml:"startup"`
}

// DefaultConfig returns the settings used for anything a config file omits.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "styletx"
	c.Mqtt.Topics.Style = "styletx/style"
	c.Mqtt.Topics.Command = "styletx/command"
	c.HTTP.Addr = ":3000"
	c.Frame.Rate = 30
	c.Element.Name = "element"
	c.Addon = AddonRGB
	return c
}

// ReadConfig decodes YAML from r over the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}

// Validate checks fields that have no usable fallback.
func (c Config) Validate() error {
	if c.Mqtt.URL == "" {
		return fmt.Errorf("config: mqtt.url is required")
	}
	if c.Mqtt.Qos > 2 {
		return fmt.Errorf("config: mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.Qos)
	}
	if _, err := NewAddon(c.Addon); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Startup != nil && c.Startup.Type != "" && c.Startup.Type != CommandAnimate {
		return fmt.Errorf("config: startup must be an %q command", CommandAnimate)
	}
	return nil
}
