package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boardmirror/boardmirror/pkg/logging"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal("unable to create directory:", err)
	}
}

func TestMonitorReconcileMirrorsMatches(t *testing.T) {
	base := t.TempDir()
	write := t.TempDir()

	mustMkdir(t, filepath.Join(base, "sub"))
	writeFile(t, filepath.Join(base, "a.txt"), "alpha")
	writeFile(t, filepath.Join(base, "sub", "b.txt"), "beta")
	writeFile(t, filepath.Join(base, "ignored.log"), "nope")

	monitor := NewMonitor("**/*.txt", base, write)
	if err := monitor.Reconcile(logging.RootLogger); err != nil {
		t.Fatal("reconcile failed:", err)
	}

	if len(monitor.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(monitor.Links))
	}

	for _, name := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		content, err := os.ReadFile(filepath.Join(write, name))
		if err != nil {
			t.Fatalf("unable to read mirrored %q: %v", name, err)
		}
		_ = content
	}

	if _, err := os.Stat(filepath.Join(write, "ignored.log")); !os.IsNotExist(err) {
		t.Error("non-matching file was mirrored")
	}
}

func TestMonitorReconcileIsIdempotent(t *testing.T) {
	base := t.TempDir()
	write := t.TempDir()
	writeFile(t, filepath.Join(base, "a.txt"), "alpha")

	monitor := NewMonitor("*.txt", base, write)
	if err := monitor.Reconcile(logging.RootLogger); err != nil {
		t.Fatal("first reconcile failed:", err)
	}
	firstLinks := len(monitor.Links)

	if err := monitor.Reconcile(logging.RootLogger); err != nil {
		t.Fatal("second reconcile failed:", err)
	}
	if len(monitor.Links) != firstLinks {
		t.Errorf("link count changed across idempotent reconcile: %d vs %d", firstLinks, len(monitor.Links))
	}
}

func TestMonitorReconcileDeletesVanishedSource(t *testing.T) {
	base := t.TempDir()
	write := t.TempDir()
	sourcePath := filepath.Join(base, "a.txt")
	writeFile(t, sourcePath, "alpha")

	monitor := NewMonitor("*.txt", base, write)
	if err := monitor.Reconcile(logging.RootLogger); err != nil {
		t.Fatal("reconcile failed:", err)
	}
	if _, err := os.Stat(filepath.Join(write, "a.txt")); err != nil {
		t.Fatal("mirrored file missing after first reconcile:", err)
	}

	if err := os.Remove(sourcePath); err != nil {
		t.Fatal("unable to remove source:", err)
	}
	if err := monitor.Reconcile(logging.RootLogger); err != nil {
		t.Fatal("reconcile after removal failed:", err)
	}
	if _, err := os.Stat(filepath.Join(write, "a.txt")); !os.IsNotExist(err) {
		t.Error("mirrored file still present after source removed")
	}
	if len(monitor.Links) != 0 {
		t.Errorf("link set not empty after source removed: %d", len(monitor.Links))
	}
}

func TestMonitorWriteDirectoryExists(t *testing.T) {
	base := t.TempDir()
	write := t.TempDir()
	monitor := NewMonitor("*.txt", base, write)
	if !monitor.WriteDirectoryExists() {
		t.Error("existing write directory reported as absent")
	}

	if err := os.RemoveAll(write); err != nil {
		t.Fatal("unable to remove write directory:", err)
	}
	if monitor.WriteDirectoryExists() {
		t.Error("removed write directory reported as present")
	}
}

func TestMonitorToRecordAbsoluteAndRelative(t *testing.T) {
	base := t.TempDir()
	write := t.TempDir()
	monitor := NewMonitor("*.txt", base, write)

	absolute := monitor.ToRecord(true)
	if absolute.Base != base || absolute.Write != write {
		t.Errorf("absolute record = %+v, want Base=%q Write=%q", absolute, base, write)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to get working directory:", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(base); err != nil {
		t.Fatal("unable to chdir:", err)
	}

	relative := NewMonitor("*.txt", base, base).ToRecord(false)
	if relative.Base != "." || relative.Write != "." {
		t.Errorf("relative record for cwd = %+v, want Base=Write=\".\"", relative)
	}
}

func TestMonitorIdentityRoundTrip(t *testing.T) {
	monitor := NewMonitor("*.txt", "/base", "/write")
	identity := monitor.Identity()
	restored := FromIdentity(identity)
	if !monitor.Equal(restored) {
		t.Errorf("FromIdentity(m.Identity()) did not round-trip: %+v vs %+v", monitor, restored)
	}
}
