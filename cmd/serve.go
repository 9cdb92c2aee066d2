package cmd

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/hooks"
	"github.com/go-mclib/mcserver/mclog"
	"github.com/go-mclib/mcserver/registry"
	"github.com/go-mclib/mcserver/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start accepting Minecraft client connections",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	log := mclog.New(cfg.LogLevel)
	store := registry.Load()

	h := hooks.Default{
		MOTD:       "A Minecraft Server",
		MaxPlayers: cfg.MaxPlayers,
		Height:     cfg.DimensionHeight,
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return session.Serve(ln, cfg, h, store, log)
}
