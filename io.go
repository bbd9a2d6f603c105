package main

import (
	"encoding/json"
	"os"

	"github.com/buger/jsonparser"
)

const configFile = "config.json"

func saveConfig(config *AppConfig) (int, error) {
	payload, err := json.Marshal(config)
	if err != nil {
		return 0, err
	}
	return len(payload), os.WriteFile(configFile, payload, 0644)
}

func loadConfig() (*AppConfig, error) {
	payload, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	config, _ := NewDefaultAppConfig()
	err = json.Unmarshal(payload, config)
	// canvas may also come as a bare [w, h] pair
	for _, key := range []string{"canvas", "snapshot"} {
		value, dType, _, _ := jsonparser.Get(payload, key)
		if dType != jsonparser.Array {
			continue
		}
		var dims []int64
		jsonparser.ArrayEach(value, func(num []byte, dataType jsonparser.ValueType, offset int, err error) {
			if v, err := jsonparser.ParseInt(num); err == nil {
				dims = append(dims, v)
			}
		})
		if len(dims) == 2 {
			if key == "canvas" {
				config.Canvas = Canvas{W: int(dims[0]), H: int(dims[1])}
			} else {
				config.Snapshot = Canvas{W: int(dims[0]), H: int(dims[1])}
			}
		}
	}
	defaults, _ := NewDefaultAppConfig()
	if config.Canvas.W <= 0 || config.Canvas.H <= 0 {
		config.Canvas = defaults.Canvas
	}
	if config.Snapshot.W <= 0 || config.Snapshot.H <= 0 {
		config.Snapshot = defaults.Snapshot
	}
	return config, err
}
