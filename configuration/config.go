package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix       = "EITHER"
	logLevel     = "log_level"
	profilesFile = "profiles"

	defaultLogLevel = "info"
)

var v *viper.Viper

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("failed to read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}

		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			flagName = strings.ReplaceAll(f.Name, "-", "_")
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores.
		envVarSuffix := strings.ToUpper(flagName)
		v.BindEnv(flagName, fmt.Sprintf("%s_%s", prefix, envVarSuffix))

		// Apply the viper config value to the flag when the flag is not set and viper has a value.
		// A flag set on the command line always wins.
		if !f.Changed && v.IsSet(flagName) {
			switch val := v.Get(flagName).(type) {
			case []interface{}:
				for _, item := range val {
					cmd.Flags().Set(f.Name, fmt.Sprintf("%v", item))
				}
			default:
				cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			}
		} else if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}

	return v.GetString(logLevel)
}

func GetProfilesFile() string {
	return v.GetString(profilesFile)
}
