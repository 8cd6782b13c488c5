package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesFile  string
	MessagesFile    string
}

var Env *EnvConfig

func init() {
	// a missing .env is fine, the process environment is used as is
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-api"),
		PropertiesFile:  getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFile:    viper.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
