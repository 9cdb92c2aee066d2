// Package session implements the per-connection login→configuration→play
// choreography (§4.7): handshake validation, status/ping responses,
// registry data push, keepalive cadence, and dispatch into the
// application hooks.
//
// No teacher file implements this (go-mclib-protocol is a client
// library and never drives a server-side connection loop); the phase
// dispatch shape follows the teacher's own packet-table switch style in
// java_protocol/packet.go, generalized into a stateful per-connection
// loop.
package session

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/time/rate"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/frame"
	"github.com/go-mclib/mcserver/hooks"
	"github.com/go-mclib/mcserver/mclog"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/registry"
	ns "github.com/go-mclib/mcserver/wire"
)

// keepAliveInterval is the Play-phase keepalive cadence (§4.7 step 5). A
// var, not a const, so tests can shorten it rather than waiting out the
// real interval.
var keepAliveInterval = 10 * time.Second

// Conn drives one client connection through the full phase state
// machine. It is owned exclusively by the goroutine that calls Handle;
// no field is ever touched by another goroutine, matching §5/§6's
// single-owner concurrency model.
type Conn struct {
	fc    *frame.Conn
	phase protocol.Phase

	cfg   config.ServerConfig
	hooks hooks.Hooks
	store *registry.Store
	log   mclog.Logger

	limiter *rate.Limiter

	connID     string
	remoteAddr string

	playerUUID ns.UUID
	username   string

	lastKeepAlive time.Time
}

// Handle drives one accepted net.Conn through its entire lifetime:
// phase dispatch until the client disconnects, times out, or a fatal
// error occurs. It always closes nc before returning.
func Handle(nc net.Conn, connID string, cfg config.ServerConfig, h hooks.Hooks, store *registry.Store, log mclog.Logger) {
	c := &Conn{
		fc:         frame.NewConn(nc),
		phase:      protocol.PhaseHandshake,
		cfg:        cfg,
		hooks:      h,
		store:      store,
		connID:     connID,
		remoteAddr: nc.RemoteAddr().String(),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	c.log = log.WithFields(mclog.Fields{"conn_id": connID, "remote_addr": c.remoteAddr})
	defer c.fc.Close()

	c.log.Info("connection accepted")
	if err := c.run(); err != nil {
		if err == frame.ErrClientTimedOut {
			c.log.Debug("client timed out")
			return
		}
		c.log.WithError(err).WithField("phase", c.phase.String()).Error("connection terminated")
		c.disconnect(err)
		return
	}
	c.log.Debug("connection closed")
}

// errProtocolRejected signals that runHandshake already sent a
// LoginDisconnect for an unsupported protocol version; run must stop
// without entering runLogin or disconnecting a second time.
var errProtocolRejected = fmt.Errorf("session: protocol version rejected")

// run dispatches packets phase by phase until Handshake resolves to
// Status/Login (then loops there) or the connection is torn down.
func (c *Conn) run() error {
	if err := c.runHandshake(); err != nil {
		if err == errProtocolRejected {
			return nil
		}
		return err
	}
	switch c.phase {
	case protocol.PhaseStatus:
		return c.runStatus()
	case protocol.PhaseLogin:
		return c.runLogin()
	default:
		return nil
	}
}

// readPacket reads one frame and returns its packet id plus a reader
// bounded to the remaining body bytes.
func (c *Conn) readPacket() (ns.VarInt, *ns.PacketBuffer, error) {
	body, err := c.fc.ReadFrame()
	if err != nil {
		return 0, nil, err
	}
	buf := ns.NewReader(body)
	id, err := buf.ReadVarInt()
	if err != nil {
		return 0, nil, fmt.Errorf("session: failed to read packet id: %w", err)
	}
	return id, buf, nil
}

// sendPacket asserts p belongs to the current phase, then encodes and
// frames it (§3 invariant: "An outbound packet's declared phase must
// equal the current Phase").
func (c *Conn) sendPacket(p protocol.Packet) error {
	if p.Phase() != c.phase {
		return fmt.Errorf("session: attempted to send %T in phase %s", p, c.phase)
	}
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(p.ID()); err != nil {
		return err
	}
	if err := p.Write(buf); err != nil {
		return fmt.Errorf("session: failed to encode %T: %w", p, err)
	}
	return c.fc.WriteFrame(buf.Bytes())
}

// runHandshake reads the sole Handshake packet and transitions phase
// per next_state, or rejects an unsupported protocol version.
func (c *Conn) runHandshake() error {
	id, buf, err := c.readPacket()
	if err != nil {
		return err
	}
	if id != (protocol.Intention{}).ID() {
		return &protocol.InvalidPacketIDError{Phase: protocol.PhaseHandshake, Bound: protocol.Serverbound, ID: id}
	}

	var intent protocol.Intention
	if err := intent.Read(buf); err != nil {
		return fmt.Errorf("session: intention: %w", err)
	}

	switch intent.NextState {
	case protocol.NextStateStatus:
		c.phase = protocol.PhaseStatus
	case protocol.NextStateLogin:
		c.phase = protocol.PhaseLogin
	case protocol.NextStateTransfer:
		// Supplemented from original_source/: treated as fatal-with-reason
		// rather than left wholly undefined (SPEC_FULL §4.3).
		return fmt.Errorf("session: transfer next-state is not supported")
	default:
		return &protocol.InvalidEnumVariantError{Name: "next_state", Value: int(intent.NextState)}
	}

	if intent.ProtocolVersion != protocol.ProtocolVersion {
		c.log.WithField("client_protocol_version", int(intent.ProtocolVersion)).Warn("protocol version mismatch")
		// Resolved Open Question: Disconnect, not panic (SPEC_FULL §10).
		// Status queries are answered regardless of version; only Login
		// is refused, since only it can carry a structured reason.
		if c.phase == protocol.PhaseLogin {
			reason := fmt.Sprintf("Unsupported protocol version %d, server is on %d (%s)",
				intent.ProtocolVersion, protocol.ProtocolVersion, protocol.GameVersion)
			_ = c.sendPacket(&protocol.LoginDisconnect{Reason: ns.String(reason)})
			return errProtocolRejected
		}
	}
	return nil
}

// runStatus answers every StatusRequest until the first PingRequest, which
// it echoes before returning (§4.7 step 2); the client is expected to
// close the connection afterward.
func (c *Conn) runStatus() error {
	for {
		id, buf, err := c.readPacket()
		if err != nil {
			return err
		}
		switch id {
		case (protocol.StatusRequest{}).ID():
			var req protocol.StatusRequest
			if err := req.Read(buf); err != nil {
				return err
			}
			statusJSON, err := c.statusJSON()
			if err != nil {
				return err
			}
			if err := c.sendPacket(&protocol.StatusResponse{StatusJSON: ns.String(statusJSON)}); err != nil {
				return err
			}
		case (protocol.PingRequest{}).ID():
			var ping protocol.PingRequest
			if err := ping.Read(buf); err != nil {
				return err
			}
			if err := c.sendPacket(&protocol.PongResponse{Timestamp: ping.Timestamp}); err != nil {
				return err
			}
			return nil
		default:
			return &protocol.InvalidPacketIDError{Phase: protocol.PhaseStatus, Bound: protocol.Serverbound, ID: id}
		}
	}
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type statusPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusDocument struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
}

func (c *Conn) statusJSON() (string, error) {
	counts := c.hooks.Players()
	desc := c.hooks.Description()
	doc := statusDocument{
		Version:     statusVersion{Name: protocol.GameVersion, Protocol: protocol.ProtocolVersion},
		Players:     statusPlayers{Max: counts.Max, Online: counts.Online},
		Description: statusDescription{Text: desc.Text},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("session: failed to marshal status json: %w", err)
	}
	return string(data), nil
}

// runLogin implements §4.7 step 3 then falls through to Configuration
// and Play.
func (c *Conn) runLogin() error {
	id, buf, err := c.readPacket()
	if err != nil {
		return err
	}
	if id != (protocol.Hello{}).ID() {
		return &protocol.InvalidPacketIDError{Phase: protocol.PhaseLogin, Bound: protocol.Serverbound, ID: id}
	}

	var hello protocol.Hello
	if err := hello.Read(buf); err != nil {
		return fmt.Errorf("session: hello: %w", err)
	}

	playerUUID, err := ns.UUIDFromBytes(uuid.NewV4().Bytes())
	if err != nil {
		return fmt.Errorf("session: failed to generate player uuid: %w", err)
	}
	c.playerUUID = playerUUID
	c.username = string(hello.Name)

	if err := c.sendPacket(&protocol.LoginFinished{
		UUID:       playerUUID,
		Username:   hello.Name,
		Properties: nil,
	}); err != nil {
		return err
	}

	id, buf, err = c.readPacket()
	if err != nil {
		return err
	}
	if id != (protocol.LoginAcknowledged{}).ID() {
		return &protocol.InvalidPacketIDError{Phase: protocol.PhaseLogin, Bound: protocol.Serverbound, ID: id}
	}
	var ack protocol.LoginAcknowledged
	if err := ack.Read(buf); err != nil {
		return err
	}

	c.phase = protocol.PhaseConfiguration
	c.log.WithField("username", c.username).Debug("phase transition: Configuration")

	if err := c.runConfiguration(); err != nil {
		return err
	}
	return c.runPlay()
}

// runConfiguration implements §4.7 step 4: the registry-push
// handshake that must complete before the client will enter Play.
func (c *Conn) runConfiguration() error {
loop:
	for {
		id, buf, err := c.readPacket()
		if err != nil {
			return err
		}
		switch id {
		case (protocol.ClientInformation{}).ID():
			var ci protocol.ClientInformation
			if err := ci.Read(buf); err != nil {
				return err
			}
			known := protocol.NewSelectKnownPacksClientbound()
			known.KnownPacks = ns.PrefixedArray[protocol.KnownPack]{
				{Namespace: "minecraft", ID: "core", Version: ns.String(protocol.GameVersion)},
			}
			if err := c.sendPacket(known); err != nil {
				return err
			}
		case 0x07: // SelectKnownPacks, serverbound
			var reply protocol.SelectKnownPacks
			if err := reply.Read(buf); err != nil {
				return err
			}
			if err := c.pushRegistries(); err != nil {
				return err
			}
			if err := c.sendPacket(&protocol.FinishConfigurationClientbound{}); err != nil {
				return err
			}
		case (protocol.FinishConfiguration{}).ID():
			var fin protocol.FinishConfiguration
			if err := fin.Read(buf); err != nil {
				return err
			}
			break loop
		case (protocol.CustomPayload{}).ID():
			var cp protocol.CustomPayload
			if err := cp.Read(buf); err != nil {
				return err
			}
			c.log.WithField("channel", string(cp.Channel)).Debug("ignored configuration custom payload")
		default:
			return &protocol.InvalidPacketIDError{Phase: protocol.PhaseConfiguration, Bound: protocol.Serverbound, ID: id}
		}
	}

	c.phase = protocol.PhasePlay
	c.lastKeepAlive = time.Now()
	c.log.Debug("phase transition: Play")
	c.hooks.OnLogin(&hookConn{c: c})
	return nil
}

// pushRegistries sends the five required RegistryData packets (§4.7).
func (c *Conn) pushRegistries() error {
	for _, rd := range buildRegistries() {
		if err := c.sendPacket(&rd); err != nil {
			return fmt.Errorf("session: registry %s: %w", rd.RegistryID, err)
		}
		c.log.WithField("registry_id", string(rd.RegistryID)).Debug("pushed registry")
	}
	return nil
}

// runPlay is the Play-phase loop (§4.7 step 5): keepalive cadence and
// dispatch into the application tick hook, with per-packet rate
// limiting and tolerant handling of packets this core does not model.
func (c *Conn) runPlay() error {
	for {
		id, buf, err := c.readPacket()
		if err != nil {
			return err
		}

		if !c.limiter.Allow() {
			c.log.Debug("inbound packet dropped by rate limiter")
			continue
		}

		switch id {
		case (protocol.ClientTickEnd{}).ID():
			var t protocol.ClientTickEnd
			if err := t.Read(buf); err != nil {
				return err
			}
			if time.Since(c.lastKeepAlive) >= keepAliveInterval {
				if err := c.sendPacket(&protocol.KeepAlive{KeepAliveID: 0}); err != nil {
					return err
				}
				c.lastKeepAlive = time.Now()
			}
			c.hooks.OnTick(&hookConn{c: c})
		case (protocol.AcceptTeleportation{}).ID():
			var at protocol.AcceptTeleportation
			if err := at.Read(buf); err != nil {
				return err
			}
		case (protocol.ChunkBatchReceived{}).ID():
			// Open Question resolution: ignored (SPEC_FULL §10).
			var cbr protocol.ChunkBatchReceived
			if err := cbr.Read(buf); err != nil {
				return err
			}
		case (protocol.PlayCustomPayload{}).ID():
			var cp protocol.PlayCustomPayload
			if err := cp.Read(buf); err != nil {
				return err
			}
		case (protocol.MovePlayerPos{}).ID():
			var mv protocol.MovePlayerPos
			if err := mv.Read(buf); err != nil {
				return err
			}
		case (protocol.MovePlayerPosRot{}).ID():
			var mv protocol.MovePlayerPosRot
			if err := mv.Read(buf); err != nil {
				return err
			}
		default:
			// §7 propagation policy: InvalidPacketId during Play is
			// logged and ignored, not fatal.
			c.log.WithField("packet_id", fmt.Sprintf("0x%02X", int(id))).Debug("ignored unrecognized play packet")
		}
	}
}

// disconnect makes a best-effort attempt to notify the client of a
// fatal error before the connection is closed (§7/§8 propagation
// policy), in whichever Disconnect packet the current phase supports.
func (c *Conn) disconnect(cause error) {
	reason := cause.Error()
	switch c.phase {
	case protocol.PhaseLogin:
		_ = c.sendPacket(&protocol.LoginDisconnect{Reason: ns.String(reason)})
	case protocol.PhaseConfiguration:
		_ = c.sendPacket(&protocol.ConfigurationDisconnect{Reason: mkTextReason(reason)})
	case protocol.PhasePlay:
		_ = c.sendPacket(&protocol.PlayDisconnect{Reason: mkTextReason(reason)})
	}
}
