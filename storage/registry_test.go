package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "channels.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"channels": [
			{"name": "Satvic Movement", "channel_id": "UCQa2X1CNCxWF3v3tCSyMCGQ"},
			{"name": "  Gut Health  ", "channel_id": ""}
		]
	}`)

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if len(r.Channels) != 2 {
		t.Fatalf("got %d channels, want 2", len(r.Channels))
	}
	if r.Channels[0].ChannelID != "UCQa2X1CNCxWF3v3tCSyMCGQ" {
		t.Errorf("ChannelID = %q", r.Channels[0].ChannelID)
	}
	if r.Channels[1].Name != "Gut Health" {
		t.Errorf("name not trimmed: %q", r.Channels[1].Name)
	}
}

func TestLoadRegistry_DropsNamelessEntries(t *testing.T) {
	path := writeRegistry(t, `{
		"channels": [
			{"name": "", "channel_id": "UCsomething"},
			{"name": "   "},
			{"name": "Kept"}
		]
	}`)

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if len(r.Channels) != 1 || r.Channels[0].Name != "Kept" {
		t.Errorf("channels = %+v, want only the named entry", r.Channels)
	}
}

func TestLoadRegistry_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
		var storageErr *StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("error = %v, want *StorageError", err)
		}
		if storageErr.Op != "load" {
			t.Errorf("Op = %q", storageErr.Op)
		}
	})

	t.Run("corrupt json", func(t *testing.T) {
		path := writeRegistry(t, `{"channels": [`)
		_, err := LoadRegistry(path)
		if !errors.Is(err, ErrRegistryCorrupt) {
			t.Errorf("error = %v, want ErrRegistryCorrupt", err)
		}
	})

	t.Run("empty channel list", func(t *testing.T) {
		path := writeRegistry(t, `{"channels": []}`)
		_, err := LoadRegistry(path)
		if !errors.Is(err, ErrNoChannels) {
			t.Errorf("error = %v, want ErrNoChannels", err)
		}
	})

	t.Run("all entries nameless", func(t *testing.T) {
		path := writeRegistry(t, `{"channels": [{"name": ""}]}`)
		_, err := LoadRegistry(path)
		if !errors.Is(err, ErrNoChannels) {
			t.Errorf("error = %v, want ErrNoChannels", err)
		}
	})
}

func TestSetChannelID(t *testing.T) {
	path := writeRegistry(t, `{"channels": [{"name": "One"}, {"name": "Two", "channel_id": "UCtwo"}]}`)
	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}

	if !r.SetChannelID("One", "UCone") {
		t.Error("setting a new ID reported no change")
	}
	if r.SetChannelID("Two", "UCtwo") {
		t.Error("setting an unchanged ID reported a change")
	}
	if r.SetChannelID("Missing", "UCx") {
		t.Error("unknown name reported a change")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeRegistry(t, `{"channels": [{"name": "One"}]}`)
	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}

	r.SetChannelID("One", "UCone")
	if err := r.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Channels[0].ChannelID != "UCone" {
		t.Errorf("ChannelID after round trip = %q, want UCone", reloaded.Channels[0].ChannelID)
	}
}

func TestAtomicWriter(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sub", "file.json")

		w, err := NewAtomicWriter(path)
		if err != nil {
			t.Fatalf("NewAtomicWriter() failed: %v", err)
		}
		if _, err := w.Write([]byte("payload")); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
		if err := w.Commit(); err != nil {
			t.Fatalf("Commit() failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(data) != "payload" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("abort leaves no trace", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.json")

		w, err := NewAtomicWriter(path)
		if err != nil {
			t.Fatalf("NewAtomicWriter() failed: %v", err)
		}
		w.Write([]byte("discard me"))
		if err := w.Abort(); err != nil {
			t.Fatalf("Abort() failed: %v", err)
		}

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("target exists after abort")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("temp files left behind: %v", entries)
		}
	})
}
