/*
Command domino compiles placement rules from CSS and applies them to HTML
documents.

   domino compile styles.css -o bundle.json
   domino apply --rules bundle.json --width 360 index.html
   domino apply --base https://example.org/ --dump index.html

Configuration is read from domino.yaml, located in the working directory or
in $HOME/.domino, and from environment variables prefixed with DOMINO_:

   viewport:
     width: 1280
     height: 800
     type: screen
   tracing:
     adapter: go        # or logrus
   tracelevel:
     root: Error
     domino.reorder: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'domino.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("domino.cmd")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "domino: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "domino",
		Short: "Domino re-arranges HTML documents driven by CSS",
		Long: `Domino moves elements of HTML documents to new parents and re-orders
siblings, driven by the custom CSS properties -domino-container and
-domino-order. Rules may be compiled into bundles ahead of time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./domino.yaml or $HOME/.domino/domino.yaml)")
	root.PersistentFlags().String("trace", "", "trace level of the root tracer (Debug, Info, Error)")
	root.AddCommand(newCompileCommand())
	root.AddCommand(newApplyCommand())
	return root
}
