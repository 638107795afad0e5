package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version         string `json:"version"`
		Account         string `json:"account"`
		CopyToClipboard bool   `json:"copy_to_clipboard"`
	} `json:"app,omitempty"`

	Storage struct {
		Accounts struct {
			Dir        string `json:"dir"`
			BundledDir string `json:"bundled_dir"`
		} `json:"accounts,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CodeRefreshInterval Duration `json:"code_refresh_interval"`
		RelistDelay         Duration `json:"relist_delay"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:         jsonCfg.App.Version,
			Account:         jsonCfg.App.Account,
			CopyToClipboard: jsonCfg.App.CopyToClipboard,
		},
		Storage: Storage{
			Accounts: Accounts{
				Dir:        jsonCfg.Storage.Accounts.Dir,
				BundledDir: jsonCfg.Storage.Accounts.BundledDir,
			},
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CodeRefreshInterval: time.Duration(jsonCfg.Workers.CodeRefreshInterval),
			RelistDelay:         time.Duration(jsonCfg.Workers.RelistDelay),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
