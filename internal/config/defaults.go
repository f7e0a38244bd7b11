package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"storage": map[string]interface{}{
			"backend":  StorageFile,
			"data_dir": "~/.calendar-plus",
		},
		"clock": map[string]interface{}{
			"tick_interval": 1,
		},
		"ui": map[string]interface{}{
			"colored_output": true,
			"show_quote":     true,
			"show_countdown": true,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.calendar-plus/config.yaml"
}
