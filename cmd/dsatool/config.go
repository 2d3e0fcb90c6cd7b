package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var CfgFile string

const DSATOOL_BASE_DIR = ".dsatool"

// tool configuration options
type ToolConfig struct {
	// directory where private key files live
	KeyDir string
	// name of the active key, stored as private-<name>.key
	KeyName string
	// modulus width used when generating fresh parameters
	Bits int
}

func defaultKeyDir() string {
	return filepath.Join(BuildDSAToolDirPath(), "keys")
}

// defaults for the tool
var defaultToolConfig = &ToolConfig{
	KeyDir:  defaultKeyDir(),
	KeyName: "dsatool",
	Bits:    2048,
}

func DefaultToolConfig() *ToolConfig {
	return defaultToolConfig
}

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.dsatool/
		viper.AddConfigPath(BuildDSAToolDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file, creating it if needed
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("key_dir", DefaultToolConfig().KeyDir)
	viper.SetDefault("key_name", DefaultToolConfig().KeyName)
	viper.SetDefault("bits", DefaultToolConfig().Bits)
}

// NewToolConfigFromViper creates a new ToolConfig from current viper settings
func NewToolConfigFromViper() *ToolConfig {
	return &ToolConfig{
		KeyDir:  viper.GetString("key_dir"),
		KeyName: viper.GetString("key_name"),
		Bits:    viper.GetInt("bits"),
	}
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildDSAToolDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current settings as the default config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func BuildDSAToolDirPath() string {
	return filepath.Join(userHome(), DSATOOL_BASE_DIR)
}

// userHome returns the current user's home directory, falling back to
// $HOME, then USERPROFILE, then the working directory so the tool can
// still run in containers where no home is set.
func userHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("Home directory unavailable, falling back to working directory")
			return wd
		}
		panic("dsatool: unable to determine home directory; set $HOME")
	}
	return homeDir
}
