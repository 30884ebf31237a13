// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates configuration for the application.
type Config struct {
	Loki LokiConfig `mapstructure:"loki"`
}

// LokiConfig carries connection settings for the Loki server.
type LokiConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	OrgID              string `mapstructure:"org_id"`
	CACertFile         string `mapstructure:"ca_cert_file"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"`
	TimeoutSeconds     int    `mapstructure:"timeout_seconds"`
}

// Load reads configuration from files and environment variables.
// Environment variables use the prefix "LOKIREADER" and the dot character
// in keys is replaced by an underscore. For example, "loki.base_url"
// becomes "LOKIREADER_LOKI_BASE_URL".
func Load() (*Config, error) {
	cfg := &Config{
		Loki: LokiConfig{
			TimeoutSeconds: 30,
		},
	}

	v := viper.New()
	v.SetConfigName("lokireader")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/lokireader")
	v.SetEnvPrefix("LOKIREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)
	_ = v.ReadInConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(parts, tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
