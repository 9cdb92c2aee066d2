package frame_test

import (
	"net"
	"testing"
	"time"

	"github.com/go-mclib/mcserver/frame"
)

func TestWriteFrame_ReadFrame_RoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	cc := frame.NewConn(client)
	sc := frame.NewConn(server)

	body := []byte("hello frame")
	done := make(chan error, 1)
	go func() { done <- cc.WriteFrame(body) }()

	got, err := sc.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("got %q, want %q", got, body)
	}
}

func TestReadFrame_AccumulatesPartialWrites(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sc := frame.NewConn(server)

	full := []byte{0x05, 'h', 'e', 'l', 'l', 'o'} // varint length 5 + body
	done := make(chan error, 1)
	go func() {
		for _, b := range full {
			if _, err := client.Write([]byte{b}); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	got, err := sc.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestReadFrame_TimesOutOnSilence(t *testing.T) {
	original := frame.ReceiveTimeout
	frame.ReceiveTimeout = 20 * time.Millisecond
	defer func() { frame.ReceiveTimeout = original }()

	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sc := frame.NewConn(server)
	_, err := sc.ReadFrame()
	if err != frame.ErrClientTimedOut {
		t.Errorf("got %v, want ErrClientTimedOut", err)
	}
}
