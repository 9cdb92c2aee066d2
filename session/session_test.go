package session

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/frame"
	"github.com/go-mclib/mcserver/hooks"
	"github.com/go-mclib/mcserver/mclog"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/registry"
	ns "github.com/go-mclib/mcserver/wire"
)

// testHooks records calls for assertions instead of driving any real world
// state.
type testHooks struct {
	mu       sync.Mutex
	onLogin  int
	onTick   int
	maxPlrs  int
	online   int
	motd     string
	height   int
}

func (h *testHooks) Description() ns.TextComponent { return ns.NewTextComponent(h.motd) }
func (h *testHooks) Players() hooks.PlayerCounts    { return hooks.PlayerCounts{Max: h.maxPlrs, Online: h.online} }
func (h *testHooks) DimensionData() hooks.DimensionData {
	return hooks.DimensionData{Height: h.height}
}

func (h *testHooks) OnLogin(c hooks.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLogin++
}

func (h *testHooks) OnTick(c hooks.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTick++
}

func (h *testHooks) counts() (logins, ticks int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.onLogin, h.onTick
}

func testConfig() config.ServerConfig {
	cfg := config.Defaults()
	cfg.RateLimit = 1000
	cfg.RateBurst = 1000
	return cfg
}

// clientSend writes p onto fc without any phase bookkeeping, simulating
// the client side of the wire.
func clientSend(t *testing.T, fc *frame.Conn, p protocol.Packet) {
	t.Helper()
	buf := ns.NewWriter()
	require.NoError(t, buf.WriteVarInt(p.ID()))
	require.NoError(t, p.Write(buf))
	require.NoError(t, fc.WriteFrame(buf.Bytes()))
}

// clientRead reads one frame from fc and returns its packet id and a
// reader positioned after the id.
func clientRead(t *testing.T, fc *frame.Conn) (ns.VarInt, *ns.PacketBuffer) {
	t.Helper()
	body, err := fc.ReadFrame()
	require.NoError(t, err)
	r := ns.NewReader(body)
	id, err := r.ReadVarInt()
	require.NoError(t, err)
	return id, r
}

// newHarness spins up Handle against one end of an in-memory pipe and
// returns the client-facing frame.Conn plus the hooks double.
func newHarness(t *testing.T) (*frame.Conn, *testHooks, func()) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	h := &testHooks{maxPlrs: 20, motd: "test server", height: 256}
	store := registry.Load()
	log := mclog.New("debug")

	done := make(chan struct{})
	go func() {
		Handle(serverConn, "test-conn", testConfig(), h, store, log)
		close(done)
	}()

	cleanup := func() {
		clientConn.Close()
		<-done
	}
	return frame.NewConn(clientConn), h, cleanup
}

func sendIntention(t *testing.T, fc *frame.Conn, nextState ns.VarInt) {
	t.Helper()
	clientSend(t, fc, &protocol.Intention{
		ProtocolVersion: protocol.ProtocolVersion,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       nextState,
	})
}

func TestStatusRequestPing_RoundTrip(t *testing.T) {
	fc, _, cleanup := newHarness(t)
	defer cleanup()

	sendIntention(t, fc, protocol.NextStateStatus)
	clientSend(t, fc, &protocol.StatusRequest{})

	id, buf := clientRead(t, fc)
	require.Equal(t, (protocol.StatusResponse{}).ID(), id)
	var resp protocol.StatusResponse
	require.NoError(t, resp.Read(buf))
	require.Contains(t, string(resp.StatusJSON), "test server")
	require.Contains(t, string(resp.StatusJSON), "1.21.4")

	clientSend(t, fc, &protocol.PingRequest{Timestamp: 42})
	id, buf = clientRead(t, fc)
	require.Equal(t, (protocol.PongResponse{}).ID(), id)
	var pong protocol.PongResponse
	require.NoError(t, pong.Read(buf))
	require.Equal(t, ns.Int64(42), pong.Timestamp)
}

func TestLogin_RejectsUnsupportedProtocolVersion(t *testing.T) {
	fc, _, cleanup := newHarness(t)
	defer cleanup()

	clientSend(t, fc, &protocol.Intention{
		ProtocolVersion: protocol.ProtocolVersion + 1,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       protocol.NextStateLogin,
	})

	id, buf := clientRead(t, fc)
	require.Equal(t, (protocol.LoginDisconnect{}).ID(), id)
	var disc protocol.LoginDisconnect
	require.NoError(t, disc.Read(buf))
	require.Contains(t, string(disc.Reason), "Unsupported protocol version")
}

func loginThroughConfiguration(t *testing.T, fc *frame.Conn) {
	t.Helper()
	sendIntention(t, fc, protocol.NextStateLogin)

	playerUUID, err := ns.UUIDFromString("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	require.NoError(t, err)
	clientSend(t, fc, &protocol.Hello{Name: "Steve", PlayerUUID: playerUUID})

	id, buf := clientRead(t, fc)
	require.Equal(t, (protocol.LoginFinished{}).ID(), id)
	var finished protocol.LoginFinished
	require.NoError(t, finished.Read(buf))
	require.Equal(t, ns.String("Steve"), finished.Username)

	clientSend(t, fc, &protocol.LoginAcknowledged{})

	clientSend(t, fc, &protocol.ClientInformation{Locale: "en_us", ViewDistance: 10})
	id, buf = clientRead(t, fc)
	require.Equal(t, protocol.NewSelectKnownPacksClientbound().ID(), id)
	var known protocol.SelectKnownPacks
	require.NoError(t, known.Read(buf))

	clientSend(t, fc, protocol.NewSelectKnownPacksServerbound())

	for i := 0; i < 5; i++ {
		id, buf = clientRead(t, fc)
		require.Equal(t, (protocol.RegistryData{}).ID(), id)
		var rd protocol.RegistryData
		require.NoError(t, rd.Read(buf))
		require.NotEmpty(t, rd.RegistryID)
	}

	id, buf = clientRead(t, fc)
	require.Equal(t, (protocol.FinishConfigurationClientbound{}).ID(), id)
	var fin protocol.FinishConfigurationClientbound
	require.NoError(t, fin.Read(buf))

	clientSend(t, fc, &protocol.FinishConfiguration{})
}

func TestLoginConfigurationPlay_InvokesOnLoginOnce(t *testing.T) {
	fc, h, cleanup := newHarness(t)
	defer cleanup()

	loginThroughConfiguration(t, fc)

	require.Eventually(t, func() bool {
		logins, _ := h.counts()
		return logins == 1
	}, time.Second, time.Millisecond, "OnLogin should be invoked exactly once")

	clientSend(t, fc, &protocol.ClientTickEnd{})
	require.Eventually(t, func() bool {
		_, ticks := h.counts()
		return ticks == 1
	}, time.Second, time.Millisecond, "OnTick should be invoked on ClientTickEnd")
}

func TestPlay_KeepAliveFiresAfterInterval(t *testing.T) {
	original := keepAliveInterval
	keepAliveInterval = 10 * time.Millisecond
	defer func() { keepAliveInterval = original }()

	fc, _, cleanup := newHarness(t)
	defer cleanup()

	loginThroughConfiguration(t, fc)

	time.Sleep(20 * time.Millisecond)
	clientSend(t, fc, &protocol.ClientTickEnd{})

	id, buf := clientRead(t, fc)
	require.Equal(t, (protocol.KeepAlive{}).ID(), id)
	var ka protocol.KeepAlive
	require.NoError(t, ka.Read(buf))
}

func TestReadFrame_ClientTimeoutClosesConnectionQuietly(t *testing.T) {
	original := frame.ReceiveTimeout
	frame.ReceiveTimeout = 15 * time.Millisecond
	defer func() { frame.ReceiveTimeout = original }()

	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	done := make(chan struct{})
	go func() {
		Handle(serverConn, "timeout-conn", testConfig(), &testHooks{}, registry.Load(), mclog.New("debug"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Handle did not return after a silent client timed out")
	}
}
