// Package cmd implements the mcserver CLI using the cobra framework, in
// the idiom of firestige-Otus's cmd package: a rootCmd with persistent
// flags bound into a shared viper instance, subcommands registered from
// init().
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	listenAddr string
	logLevel   string

	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:     "mcserver",
	Short:   "mcserver - a server-side Minecraft Java Edition network core",
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "address to listen on, e.g. 0.0.0.0:25565")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	_ = v.BindPFlag("listen_addr", rootCmd.PersistentFlags().Lookup("listen"))
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
}
