package netplan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
network:
  version: 2
  ethernets:
    eth0:
      dhcp4: true
      nameservers:
        addresses: [10.0.0.53]
        search: [lab.example]
      routes:
        - to: 192.168.0.0/16
          via: 10.0.0.1
          metric: 50
  wifis:
    wlan0:
      access-points:
        home:
          password: hunter22
`)
	doc, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	eth := doc.Network.Ethernets["eth0"]
	if eth == nil || !eth.DHCP4 {
		t.Fatalf("ethernets[eth0] = %+v", eth)
	}
	if eth.Nameservers == nil || eth.Nameservers.Addresses[0] != "10.0.0.53" {
		t.Errorf("nameservers = %+v", eth.Nameservers)
	}
	if len(eth.Routes) != 1 || eth.Routes[0].Via != "10.0.0.1" || eth.Routes[0].Metric != 50 {
		t.Errorf("routes = %+v", eth.Routes)
	}
	wifi := doc.Network.Wifis["wlan0"]
	if wifi == nil || wifi.AccessPoints["home"] == nil || wifi.AccessPoints["home"].Password != "hunter22" {
		t.Errorf("wifis[wlan0] = %+v", wifi)
	}
}

func TestParse_DefaultsVersion(t *testing.T) {
	doc, err := Parse([]byte("network:\n  ethernets:\n    eth0: {dhcp4: true}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Network.Version != 2 {
		t.Errorf("version = %d, want 2", doc.Network.Version)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("network: [not, a, mapping]\n")); err == nil {
		t.Error("structurally wrong document should fail to parse")
	}
}

func TestLoad_MergesLexically(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "etc", "netplan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	write("00-base.yaml", "network:\n  ethernets:\n    eth0: {dhcp4: true}\n    eth1: {dhcp4: true}\n")
	write("50-override.yaml", "network:\n  ethernets:\n    eth0: {dhcp4: false, addresses: [10.0.0.2/24]}\n")
	write("notes.txt", "not yaml, must be skipped")

	doc, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}

	eth0 := doc.Network.Ethernets["eth0"]
	if eth0.DHCP4 {
		t.Error("later file should override eth0 entirely")
	}
	if len(eth0.Addresses) != 1 || eth0.Addresses[0] != "10.0.0.2/24" {
		t.Errorf("eth0.addresses = %v", eth0.Addresses)
	}
	if doc.Network.Ethernets["eth1"] == nil {
		t.Error("entries only in the earlier file must survive the merge")
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	doc, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Network.Version != 2 {
		t.Error("missing config directory should yield an empty document")
	}
}

func TestStringify(t *testing.T) {
	doc := NewDocument()
	doc.Section("ethernets")["eth0"] = &Device{DHCP4: true}

	out, err := doc.Stringify("ifplan")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "# This is the network config written by 'ifplan'\n") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "version: 2") || !strings.Contains(out, "dhcp4: true") {
		t.Errorf("unexpected body:\n%s", out)
	}
	if strings.Contains(out, "wifis") {
		t.Error("empty sections must be omitted")
	}
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	doc := NewDocument()
	doc.Section("ethernets")["eth0"] = &Device{DHCP4: true}

	if err := doc.Write(root, "ifplan"); err != nil {
		t.Fatal(err)
	}

	rendered, err := os.ReadFile(filepath.Join(root, RenderedConfigPath))
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("written document must parse back: %v", err)
	}
	if parsed.Network.Ethernets["eth0"] == nil {
		t.Error("written document lost the device entry")
	}

	stub, err := os.ReadFile(filepath.Join(root, CloudInitDisablePath))
	if err != nil {
		t.Fatal(err)
	}
	if string(stub) != CloudInitDisableContent {
		t.Errorf("cloud-init stub = %q, want %q", stub, CloudInitDisableContent)
	}
}

func TestConfigPaths(t *testing.T) {
	paths := ConfigPaths("/target")
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/target/") {
			t.Errorf("path %s not under root", p)
		}
	}
}
