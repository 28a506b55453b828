package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

func startTestDaemon(t *testing.T) (*Daemon, *client.Client) {
	t.Helper()
	isolateAppDirectory(t)

	server, err := New(0, 5*time.Millisecond, logging.RootLogger)
	if err != nil {
		t.Fatal("unable to create daemon:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	return server, client.New(server.Port())
}

func TestDaemonPing(t *testing.T) {
	_, c := startTestDaemon(t)
	if !c.Ping() {
		t.Fatal("Ping failed against a freshly started daemon")
	}
}

func TestDaemonEcho(t *testing.T) {
	_, c := startTestDaemon(t)
	reply, err := c.Echo("hello there")
	if err != nil {
		t.Fatal("Echo failed against a freshly started daemon:", err)
	}
	if reply != "hello there" {
		t.Fatalf("Echo reply = %q, want %q", reply, "hello there")
	}
}

func TestDaemonStartViewStopLinkLifecycle(t *testing.T) {
	_, c := startTestDaemon(t)

	base := t.TempDir()
	write := t.TempDir()

	resp, err := c.Send(protocol.Request{
		Type:           protocol.RequestStartLink,
		ReadPattern:    "*.txt",
		BaseDirectory:  base,
		WriteDirectory: write,
	})
	if err != nil {
		t.Fatal("StartLink request failed:", err)
	}
	if resp.Type != protocol.ResponseNoData {
		t.Fatalf("StartLink response = %+v, want NoData", resp)
	}

	resp, err = c.Send(protocol.Request{Type: protocol.RequestViewLink, Absolute: true})
	if err != nil {
		t.Fatal("ViewLink request failed:", err)
	}
	var records []struct {
		Pattern string `json:"pattern"`
		Base    string `json:"base"`
		Write   string `json:"write"`
	}
	if err := protocol.DecodeLinks(resp, &records); err != nil {
		t.Fatal("unable to decode link records:", err)
	}
	if len(records) != 1 || records[0].Pattern != "*.txt" || records[0].Base != base || records[0].Write != write {
		t.Errorf("ViewLink records = %+v, want one record for %q/%q/%q", records, "*.txt", base, write)
	}

	resp, err = c.Send(protocol.Request{Type: protocol.RequestStopLink, Number: 1})
	if err != nil {
		t.Fatal("StopLink request failed:", err)
	}
	if resp.Type != protocol.ResponseNoData {
		t.Fatalf("StopLink response = %+v, want NoData", resp)
	}

	resp, err = c.Send(protocol.Request{Type: protocol.RequestViewLink})
	if err != nil {
		t.Fatal("ViewLink (post-stop) request failed:", err)
	}
	var empty []struct{}
	if err := protocol.DecodeLinks(resp, &empty); err != nil {
		t.Fatal("unable to decode post-stop link records:", err)
	}
	if len(empty) != 0 {
		t.Errorf("link table not empty after StopLink: %+v", empty)
	}
}

func TestDaemonStopLinkUnknownNumber(t *testing.T) {
	_, c := startTestDaemon(t)
	resp, err := c.Send(protocol.Request{Type: protocol.RequestStopLink, Number: 5})
	if err != nil {
		t.Fatal("StopLink request failed:", err)
	}
	if resp.Type != protocol.ResponseErrorMessage {
		t.Fatalf("StopLink(unknown) response = %+v, want ErrorMessage", resp)
	}
}

func TestDaemonWorkspaceNameInvalidatedByStartLink(t *testing.T) {
	_, c := startTestDaemon(t)

	if _, err := c.Send(protocol.Request{Type: protocol.RequestSetWorkspaceName, Name: "desk"}); err != nil {
		t.Fatal("SetWorkspaceName failed:", err)
	}
	resp, err := c.Send(protocol.Request{Type: protocol.RequestViewWorkspaceName})
	if err != nil {
		t.Fatal("ViewWorkspaceName failed:", err)
	}
	if resp.Message != "desk" {
		t.Fatalf("workspace name = %q, want %q", resp.Message, "desk")
	}

	base, write := t.TempDir(), t.TempDir()
	if _, err := c.Send(protocol.Request{
		Type:           protocol.RequestStartLink,
		ReadPattern:    "*.txt",
		BaseDirectory:  base,
		WriteDirectory: write,
	}); err != nil {
		t.Fatal("StartLink failed:", err)
	}

	resp, err = c.Send(protocol.Request{Type: protocol.RequestViewWorkspaceName})
	if err != nil {
		t.Fatal("ViewWorkspaceName (post-StartLink) failed:", err)
	}
	if resp.Message != "" {
		t.Errorf("workspace name = %q after StartLink, want empty (invalidated)", resp.Message)
	}
}

func TestDaemonReconcileDropsMonitorWhenWriteDirectoryVanishes(t *testing.T) {
	_, c := startTestDaemon(t)

	base := t.TempDir()
	write := filepath.Join(t.TempDir(), "removable")
	if err := os.MkdirAll(write, 0755); err != nil {
		t.Fatal("unable to create write directory:", err)
	}

	if _, err := c.Send(protocol.Request{
		Type:           protocol.RequestStartLink,
		ReadPattern:    "*.txt",
		BaseDirectory:  base,
		WriteDirectory: write,
	}); err != nil {
		t.Fatal("StartLink failed:", err)
	}

	if err := os.RemoveAll(write); err != nil {
		t.Fatal("unable to remove write directory:", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := c.Send(protocol.Request{Type: protocol.RequestViewLink})
		if err != nil {
			t.Fatal("ViewLink failed:", err)
		}
		var records []struct{}
		if err := protocol.DecodeLinks(resp, &records); err != nil {
			t.Fatal("unable to decode link records:", err)
		}
		if len(records) == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("monitor not dropped after write directory vanished (still %d)", len(records))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDaemonShutdown(t *testing.T) {
	isolateAppDirectory(t)
	server, err := New(0, 5*time.Millisecond, logging.RootLogger)
	if err != nil {
		t.Fatal("unable to create daemon:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	c := client.New(server.Port())
	resp, err := c.Send(protocol.Request{Type: protocol.RequestShutdown})
	if err != nil {
		t.Fatal("Shutdown request failed:", err)
	}
	if resp.Message != protocol.StoppingMessage {
		t.Fatalf("Shutdown response message = %q, want %q", resp.Message, protocol.StoppingMessage)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal("Run returned an error after Shutdown:", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("daemon loop did not exit after Shutdown")
	}
}
