package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"todo-api/pkg/log"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Init loads application properties from a YAML file and aborts the process on failure.
func Init(filepath string) {
	if err := Load(filepath); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Load reads the YAML file at filepath into viper, resolving ${ENV:default} placeholders
// against the process environment.
func Load(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		return fmt.Errorf("merge resolved properties: %w", err)
	}
	return nil
}

// SetDefault registers a value used when the key is absent from the properties file.
func SetDefault(key string, value any) {
	viper.SetDefault(key, value)
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		case []any:
			result[fullKey] = v
		default:
			log.Warnf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value; plain values are returned unchanged
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetStringSlice splits a space separated value into its fields.
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
