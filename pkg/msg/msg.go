package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed messages.yml
var defaultMessages []byte

var (
	messages = make(map[string]string)
	mutex    sync.RWMutex
)

func init() {
	if err := load(bytes.NewReader(defaultMessages)); err != nil {
		panic(fmt.Sprintf("invalid embedded messages: %v", err))
	}
}

// Init merges the messages of a YAML file over the ones already loaded.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return fmt.Errorf("read messages %s: %w", filepath, err)
	}

	mutex.Lock()
	defer mutex.Unlock()
	parseMessageMap("", reader.AllSettings(), messages)
	return nil
}

func load(source *bytes.Reader) error {
	reader := viper.New()
	reader.SetConfigType("yml")
	if err := reader.ReadConfig(source); err != nil {
		return err
	}

	mutex.Lock()
	defer mutex.Unlock()
	parseMessageMap("", reader.AllSettings(), messages)
	return nil
}

// parseMessageMap flattens the yml tree into dotted keys
func parseMessageMap(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message registered under key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...any) string {
	mutex.RLock()
	message, exists := messages[key]
	mutex.RUnlock()

	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := "{" + strconv.Itoa(i) + "}"
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg any) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value any) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
