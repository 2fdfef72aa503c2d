package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contacts-board/internal/config"
	"github.com/pdxmph/contacts-board/internal/export"
)

// writeConfig writes a config that keeps logs and exports inside dir
func writeConfig(t *testing.T, dir string, edit func(*config.Config)) string {
	t.Helper()
	cfg := config.Default()
	cfg.Theme.Path = filepath.Join(dir, "palette.toml")
	cfg.Export.Dir = filepath.Join(dir, "exports")
	cfg.Log.Path = filepath.Join(dir, "board.log")
	if edit != nil {
		edit(cfg)
	}
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, cfg.SaveTo(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, nil)

	out, err := run(t, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Sai Teja")
	assert.Contains(t, out, "VinnySai")
	assert.NotContains(t, out, "Prabhu")
	assert.Contains(t, out, "1–5 of 9 (page 1 of 2)")
	assert.Contains(t, out, "Total: 9  Admin: 3  Manager: 2  User: 4")

	_, err = os.Stat(filepath.Join(dir, "board.log"))
	assert.NoError(t, err, "log file should be created")
}

func TestListCmd_Filters(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), nil)

	out, err := run(t, "list", "--config", cfgPath, "--access", "admin")
	require.NoError(t, err)
	for _, name := range []string{"Sai Teja", "Vinny", "Bangaram"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "1–3 of 3")

	out, err = run(t, "list", "--config", cfgPath, "--search", "sai", "--page", "1", "--page-size", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "1–3 of 3")

	out, err = run(t, "list", "--config", cfgPath, "--search", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts match")
	assert.Contains(t, out, "0–0 of 0")
}

func TestListCmd_SecondPage(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), nil)

	out, err := run(t, "list", "--config", cfgPath, "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Prabhu")
	assert.Contains(t, out, "6–9 of 9 (page 2 of 2)")
}

func TestListCmd_BadFlags(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), nil)

	_, err := run(t, "list", "--config", cfgPath, "--access", "root")
	assert.ErrorContains(t, err, "--access")

	_, err = run(t, "list", "--config", cfgPath, "--page", "0")
	assert.Error(t, err)
}

func TestListCmd_HugePage(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), nil)

	out, err := run(t, "list", "--config", cfgPath, "--page", "2305843009213693953", "--page-size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "past the last page")
	assert.Contains(t, out, "0–0 of 9")
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\npage_size = 7\n"), 0644))

	_, err := run(t, "list", "--config", path)
	assert.ErrorContains(t, err, "page_size")
}

func TestExportCmd_Out(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, nil)
	target := filepath.Join(dir, "admins.toml")

	out, err := run(t, "export", "--config", cfgPath, "--format", "toml", "--out", target, "--access", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 contacts to "+target)

	snap, err := export.ReadTOML(target)
	require.NoError(t, err)
	require.Len(t, snap.Contacts, 3)
	assert.Equal(t, "Sai Teja", snap.Contacts[0].Name)

	_, err = run(t, "export", "--config", cfgPath, "--format", "toml", "--out", target)
	assert.Error(t, err, "existing snapshot must not be overwritten")
}

func TestExportCmd_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, func(c *config.Config) { c.Export.Format = "sqlite" })

	out, err := run(t, "export", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 9 contacts to ")

	entries, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".db"))
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), nil)

	_, err := run(t, "export", "--config", cfgPath, "--format", "csv")
	assert.Error(t, err)
}

func TestInitConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := run(t, "init-config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().UI, cfg.UI)

	_, err = run(t, "init-config", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init-config", "--config", path, "--force")
	assert.NoError(t, err)
}
