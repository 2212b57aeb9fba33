package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	RoomGrace         time.Duration `mapstructure:"room_grace" yaml:"room_grace"`
	WSMsgPerMinute    int           `mapstructure:"ws_msg_per_minute" yaml:"ws_msg_per_minute"`
}

// Default returns configuration with reasonable starter defaults. The room
// grace period is how long an emptied room survives a transient disconnect
// such as a page reload.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		RoomGrace:         10 * time.Second,
		WSMsgPerMinute:    0,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.RoomGrace != 0 {
		c.RoomGrace = other.RoomGrace
	}
	if other.WSMsgPerMinute != 0 {
		c.WSMsgPerMinute = other.WSMsgPerMinute
	}
}
