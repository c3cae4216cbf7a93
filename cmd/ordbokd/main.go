package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/ordbok/pkg/source"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

type SourceConfig struct {
	// URL is a CSV export or a shared spreadsheet link. Empty disables remote loading.
	URL         string
	ExtraHeader map[string]string
	MaxWorkers  int
}

type DataConfig struct {
	// Path replaces the bundled word list with a JSON file of the same format.
	Path string
}

type Config struct {
	ZapConfig string
	Host      string

	Source SourceConfig
	Cached source.CachedConfig
	Data   DataConfig
}

func (c *Config) ZapConf() (*zap.Config, error) {
	if c.ZapConfig == "" {
		defaultConf := zap.NewDevelopmentConfig()
		return &defaultConf, nil
	}
	var zapConf zap.Config
	if err := json.Unmarshal([]byte(c.ZapConfig), &zapConf); err != nil {
		return nil, err
	}
	return &zapConf, nil
}

func getConfig(args []string) (*Config, *zap.Config, error) {
	flags := pflag.NewFlagSet("ordbokd", pflag.ContinueOnError)
	flags.StringP("config", "c", "config.yaml", "path to local config")
	flags.String("host", "localhost:8080", "address to listen on")
	flags.String("source.url", "", "spreadsheet share link or CSV export URL")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, err
	}
	v.SetEnvPrefix("ORDBOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("host", "localhost:8080")
	if err := v.BindEnv("source.url", "ORDBOK_SOURCE_URL", "GOOGLE_SHEET_CSV_URL"); err != nil {
		return nil, nil, err
	}
	for _, key := range []string{"zapconfig", "source.maxworkers", "cached.path", "cached.inmemory", "data.path"} {
		if err := v.BindEnv(key); err != nil {
			return nil, nil, err
		}
	}

	configPath := v.GetString("config")
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", configPath)
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, nil, fmt.Errorf("error while unmarshaling config: %w", err)
	}
	zapConf, err := conf.ZapConf()
	if err != nil {
		return nil, nil, err
	}
	return &conf, zapConf, nil
}

func main() {
	conf, zapConf, err := getConfig(os.Args[1:])
	if err != nil {
		exitf(codeErrorArgs, "Failure while parsing arguments: %s\n", err)
	}
	logger, err := zapConf.Build()
	if err != nil {
		exitf(codeErrorArgs, "Failure while instatiating logger: %s\n", err)
	}
	defer logger.Sync() // nolint:errcheck // nothing to do on failure

	logger.Info("Starting server",
		zap.String("host", conf.Host),
		zap.Bool("remote", conf.Source.URL != ""),
	)
	server, err := New(logger, conf)
	if err != nil {
		exitf(codeInternalError, "Can not initialize server: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		if err := server.Close(context.Background()); err != nil {
			logger.Error("Shutdown error", zap.Error(err))
			return
		}
	}()

	logger.Info("Listening started", zap.String("url", "http://"+conf.Host))
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", zap.Error(err))
		}
	}
	logger.Info("Closed")
}
