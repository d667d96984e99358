package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		content := `
backend = "notifu"
vendor_dir = "C:/tools/notifu"
app_icon = "balloon.png"

[defaults]
sound = true
time = 5000
`
		path := createTempConfig(t, content)

		config, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Backend != BackendNotifu {
			t.Errorf("expected backend 'notifu', got %s", config.Backend)
		}
		if config.VendorDir != "C:/tools/notifu" {
			t.Errorf("unexpected vendor dir %s", config.VendorDir)
		}
		if config.Defaults["sound"] != true {
			t.Errorf("expected default sound true, got %v", config.Defaults["sound"])
		}
		if config.Defaults["time"] != int64(5000) {
			t.Errorf("expected default time 5000, got %#v", config.Defaults["time"])
		}
	})

	t.Run("default backend", func(t *testing.T) {
		path := createTempConfig(t, `app_icon = "balloon.png"`)

		config, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Backend != BackendAuto {
			t.Errorf("expected default backend 'auto', got %s", config.Backend)
		}
		if config.Defaults == nil {
			t.Error("expected defaults to be initialized")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Backend != BackendAuto {
			t.Errorf("expected default backend 'auto', got %s", config.Backend)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := createTempConfig(t, `backend = "carrier-pigeon"`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("defaults with a message", func(t *testing.T) {
		path := createTempConfig(t, "[defaults]\nmessage = \"always\"\n")

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := createTempConfig(t, `backend = `)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}

func TestResolveVendorDir(t *testing.T) {
	config := Default()
	dir, err := config.ResolveVendorDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join("vendor", "notifu")) {
		t.Errorf("unexpected vendor dir %s", dir)
	}

	config.VendorDir = "/opt/notifu"
	dir, err = config.ResolveVendorDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dir != "/opt/notifu" {
		t.Errorf("expected configured vendor dir, got %s", dir)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if buf.String() != "backend = \"auto\"\n" {
		t.Errorf("unexpected encoding %q", buf.String())
	}

	path := createTempConfig(t, buf.String())
	config, err := Load(path)
	if err != nil {
		t.Fatalf("expected encoded config to load, got %v", err)
	}
	if config.Backend != BackendAuto {
		t.Errorf("expected backend 'auto', got %s", config.Backend)
	}
}

func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp config file: %v", err)
	}
	return path
}
