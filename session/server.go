package session

import (
	"net"
	"strconv"
	"sync/atomic"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/hooks"
	"github.com/go-mclib/mcserver/mclog"
	"github.com/go-mclib/mcserver/registry"
)

var nextConnID int64

// Serve accepts connections on ln until it returns an error (typically
// because ln was closed), handling each one in its own goroutine. It never
// returns nil; callers that want a clean shutdown should close ln from
// another goroutine and treat the resulting net.ErrClosed as expected.
func Serve(ln net.Listener, cfg config.ServerConfig, h hooks.Hooks, store *registry.Store, log mclog.Logger) error {
	log.WithField("listen_addr", ln.Addr().String()).Info("listening")
	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}
		connID := strconv.FormatInt(atomic.AddInt64(&nextConnID, 1), 10)
		go Handle(nc, connID, cfg, h, store, log)
	}
}
