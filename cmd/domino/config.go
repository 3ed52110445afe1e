package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/domino/media"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "domino"

// Configuration keys.
const (
	keyWidth       = "viewport.width"
	keyHeight      = "viewport.height"
	keyMediaType   = "viewport.type"
	keyAdapter     = "tracing.adapter"
	keyTraceLevels = "tracelevel"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"trace":      keyTraceLevels + ".root",
	"width":      keyWidth,
	"height":     keyHeight,
	"media-type": keyMediaType,
}

// initConfig reads the configuration file, if any, and sets up tracing.
// An explicitly named config file has to exist. Flags of cmd override
// configuration values.
func initConfig(cmd *cobra.Command, path string) error {
	viper.Reset()
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	viper.SetDefault(keyWidth, media.Default.Width)
	viper.SetDefault(keyHeight, media.Default.Height)
	viper.SetDefault(keyMediaType, media.Default.Type)
	viper.SetDefault(keyAdapter, "go")
	viper.SetDefault(keyTraceLevels+".root", "Error")
	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(appName)
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/." + appName)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("cannot read configuration: %w", err)
		}
	}
	return setupTracing(viperadapter.New(appName))
}

var registerAdapters sync.Once

// setupTracing installs trace2go as the tracer factory. Trace levels are
// taken from keys below 'tracelevel'.
func setupTracing(conf schuko.Configuration) error {
	registerAdapters.Do(func() {
		tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
		tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	})
	if err := trace2go.ConfigureRoot(conf, keyTraceLevels, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// viewport assembles the viewport from configuration, environment and flags.
func viewport() (media.Viewport, error) {
	vp := media.Viewport{
		Width:  viper.GetInt(keyWidth),
		Height: viper.GetInt(keyHeight),
		Type:   strings.ToLower(viper.GetString(keyMediaType)),
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return vp, fmt.Errorf("invalid viewport %s", vp)
	}
	return vp, nil
}
