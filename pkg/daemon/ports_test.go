package daemon

import (
	"sort"
	"testing"

	"github.com/boardmirror/boardmirror/pkg/logging"
)

func isolateAppDirectory(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestRegisterAndCandidatePorts(t *testing.T) {
	isolateAppDirectory(t)

	for _, port := range []uint16{51000, 51001, 51002} {
		if err := RegisterPort(port); err != nil {
			t.Fatalf("RegisterPort(%d) failed: %v", port, err)
		}
	}

	ports, err := CandidatePorts()
	if err != nil {
		t.Fatal("CandidatePorts failed:", err)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i] < ports[j] })

	want := []uint16{51000, 51001, 51002}
	if len(ports) != len(want) {
		t.Fatalf("CandidatePorts() = %v, want %v", ports, want)
	}
	for i := range want {
		if ports[i] != want[i] {
			t.Errorf("CandidatePorts()[%d] = %d, want %d", i, ports[i], want[i])
		}
	}
}

func TestUnregisterPortIsIdempotent(t *testing.T) {
	isolateAppDirectory(t)

	if err := RegisterPort(51010); err != nil {
		t.Fatal("RegisterPort failed:", err)
	}
	if err := UnregisterPort(51010); err != nil {
		t.Fatal("first UnregisterPort failed:", err)
	}
	if err := UnregisterPort(51010); err != nil {
		t.Fatal("second UnregisterPort (already gone) failed:", err)
	}

	ports, err := CandidatePorts()
	if err != nil {
		t.Fatal("CandidatePorts failed:", err)
	}
	if len(ports) != 0 {
		t.Errorf("CandidatePorts() = %v after unregister, want empty", ports)
	}
}

func TestRemoveStalePort(t *testing.T) {
	isolateAppDirectory(t)

	if err := RegisterPort(51020); err != nil {
		t.Fatal("RegisterPort failed:", err)
	}
	RemoveStalePort(51020, logging.RootLogger)

	ports, err := CandidatePorts()
	if err != nil {
		t.Fatal("CandidatePorts failed:", err)
	}
	if len(ports) != 0 {
		t.Errorf("CandidatePorts() = %v after RemoveStalePort, want empty", ports)
	}
}
