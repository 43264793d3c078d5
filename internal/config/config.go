// Package config provides Viper-based configuration loading for Galactic Dawn.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds top-level process settings.
type ServerConfig struct {
	// Mode selects the frontend: "local" plays on stdin/stdout, "telnet" serves
	// one independent game per Telnet connection.
	Mode string `mapstructure:"mode"`
}

// TelnetConfig holds Telnet acceptor settings.
type TelnetConfig struct {
	// Host is the bind address for the Telnet listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the Telnet listener.
	Port int `mapstructure:"port"`
	// ReadTimeout is the per-read timeout for Telnet connections.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for Telnet connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds per-session world and player settings.
type GameConfig struct {
	// StartHealth is the player's health at session start. There is no cap.
	StartHealth int `mapstructure:"start_health"`
	// StartX and StartY are the player's starting coordinates.
	StartX int `mapstructure:"start_x"`
	StartY int `mapstructure:"start_y"`
	// GridSize is the width and height of the square map.
	GridSize int `mapstructure:"grid_size"`
	// StartItems are the item IDs granted at session start.
	StartItems []string `mapstructure:"start_items"`
	// Seed fixes the random source when non-zero; 0 uses crypto/rand.
	Seed int64 `mapstructure:"seed"`
	// Color enables ANSI styling of game output.
	Color bool `mapstructure:"color"`
}

// CombatConfig holds the tunable combat constants.
type CombatConfig struct {
	// BaseDamage is the dice expression for the player's unarmed attack roll.
	BaseDamage string `mapstructure:"base_damage"`
	// WeaponItem is the item ID whose presence adds WeaponBonus to every attack.
	WeaponItem  string `mapstructure:"weapon_item"`
	WeaponBonus int    `mapstructure:"weapon_bonus"`
	// ShieldItem is the item ID whose presence scales incoming damage to
	// ShieldPercent percent (rounded down).
	ShieldItem    string `mapstructure:"shield_item"`
	ShieldPercent int    `mapstructure:"shield_percent"`
	// HealItem is the consumable item ID used by the heal action.
	HealItem   string `mapstructure:"heal_item"`
	HealAmount int    `mapstructure:"heal_amount"`
	// FleeChance is the percent chance a flee attempt succeeds.
	FleeChance int `mapstructure:"flee_chance"`
}

// ContentConfig holds the locations of the YAML and Lua game content.
type ContentConfig struct {
	ItemsDir   string `mapstructure:"items_dir"`
	EnemiesDir string `mapstructure:"enemies_dir"`
	WorldFile  string `mapstructure:"world_file"`
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Telnet  TelnetConfig  `mapstructure:"telnet"`
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateServer(c.Server); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Server.Mode == "telnet" {
		if err := validateTelnet(c.Telnet); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateServer(s ServerConfig) error {
	validModes := map[string]bool{"local": true, "telnet": true}
	if !validModes[s.Mode] {
		return fmt.Errorf("server.mode must be one of [local, telnet], got %q", s.Mode)
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.StartHealth < 1 {
		errs = append(errs, fmt.Sprintf("game.start_health must be >= 1, got %d", g.StartHealth))
	}
	if g.GridSize < 1 {
		errs = append(errs, fmt.Sprintf("game.grid_size must be >= 1, got %d", g.GridSize))
	}
	if g.StartX < 0 || g.StartX >= g.GridSize || g.StartY < 0 || g.StartY >= g.GridSize {
		errs = append(errs, fmt.Sprintf("game start position (%d, %d) lies outside the %dx%d grid", g.StartX, g.StartY, g.GridSize, g.GridSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.BaseDamage == "" {
		errs = append(errs, "combat.base_damage must not be empty")
	}
	if c.WeaponBonus < 0 {
		errs = append(errs, fmt.Sprintf("combat.weapon_bonus must be >= 0, got %d", c.WeaponBonus))
	}
	if c.ShieldPercent < 0 || c.ShieldPercent > 100 {
		errs = append(errs, fmt.Sprintf("combat.shield_percent must be 0-100, got %d", c.ShieldPercent))
	}
	if c.HealItem == "" {
		errs = append(errs, "combat.heal_item must not be empty")
	}
	if c.HealAmount < 0 {
		errs = append(errs, fmt.Sprintf("combat.heal_amount must be >= 0, got %d", c.HealAmount))
	}
	if c.FleeChance < 0 || c.FleeChance > 100 {
		errs = append(errs, fmt.Sprintf("combat.flee_chance must be 0-100, got %d", c.FleeChance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.ItemsDir == "" || c.EnemiesDir == "" || c.WorldFile == "" {
		return errors.New("content.items_dir, content.enemies_dir and content.world_file must not be empty")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GALACTIC_ prefix
	v.SetEnvPrefix("GALACTIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the built-in defaults.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "local")

	v.SetDefault("telnet.host", "0.0.0.0")
	v.SetDefault("telnet.port", 4000)
	v.SetDefault("telnet.read_timeout", "10m")
	v.SetDefault("telnet.write_timeout", "30s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.start_health", 100)
	v.SetDefault("game.start_x", 2)
	v.SetDefault("game.start_y", 2)
	v.SetDefault("game.grid_size", 5)
	v.SetDefault("game.start_items", []string{"stimpack"})
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.color", true)

	v.SetDefault("combat.base_damage", "1d16+9")
	v.SetDefault("combat.weapon_item", "laser_rifle")
	v.SetDefault("combat.weapon_bonus", 30)
	v.SetDefault("combat.shield_item", "shield_module")
	v.SetDefault("combat.shield_percent", 50)
	v.SetDefault("combat.heal_item", "stimpack")
	v.SetDefault("combat.heal_amount", 50)
	v.SetDefault("combat.flee_chance", 50)

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.enemies_dir", "content/enemies")
	v.SetDefault("content.world_file", "content/world/galaxy.yaml")
	v.SetDefault("content.scripts_dir", "content/scripts")
}
