package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeProfile(t, `
fmc_host: fmc.example.net
device: ftd-branch-01
routes_file: exports/branch01-routes.txt
object_limit: 500
insecure: true
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.FMCHost != "fmc.example.net" || p.Device != "ftd-branch-01" {
		t.Errorf("profile = %+v", p)
	}
	if p.ObjectLimit != 500 || !p.Insecure {
		t.Errorf("profile options = %+v", p)
	}
}

func TestLoad_SSHSource(t *testing.T) {
	path := writeProfile(t, `
fmc_host: fmc.example.net
device: ftd-branch-01
asa_host: 198.51.100.1
asa_user: admin
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.ASAHost != "198.51.100.1" || p.ASAUser != "admin" {
		t.Errorf("profile = %+v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing fmc_host",
			"device: ftd-branch-01\nroutes_file: r.txt\n",
			"fmc_host is required",
		},
		{
			"missing device",
			"fmc_host: fmc.example.net\nroutes_file: r.txt\n",
			"device is required",
		},
		{
			"no route source",
			"fmc_host: fmc.example.net\ndevice: ftd-branch-01\n",
			"one of routes_file or asa_host",
		},
		{
			"both route sources",
			"fmc_host: fmc.example.net\ndevice: ftd-branch-01\nroutes_file: r.txt\nasa_host: 198.51.100.1\n",
			"mutually exclusive",
		},
		{
			"bad yaml",
			"fmc_host: [unclosed\n",
			"parsing profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfile(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for missing file")
	}
}
