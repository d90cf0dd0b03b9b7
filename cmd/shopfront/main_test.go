package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/shopfront/internal/config"
)

func writeConfig(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SHOPFRONT_CONFIG", "")
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf(`[catalog]
source = %q

[database]
path = %q

[log]
path = ""
`, source, filepath.Join(dir, "data", "catalog.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	cfg := writeConfig(t, config.SourceLocal)

	out, err := run(t, "--config", cfg, "seed")
	require.NoError(t, err)
	require.Contains(t, out, "10 products")

	out, err = run(t, "--config", cfg, "seed", "--extra", "5", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "15 products")

	out, err = run(t, "--config", cfg, "seed", "--reset")
	require.NoError(t, err)
	require.Contains(t, out, "10 products")
}

func TestSearchCommand(t *testing.T) {
	cfg := writeConfig(t, config.SourceLocal)

	out, err := run(t, "--config", cfg, "search", "--title", "shirt")
	require.NoError(t, err)
	require.Contains(t, out, "Oxford Shirt")
	require.Contains(t, out, "3 products")

	out, err = run(t, "--config", cfg, "search", "--description", "leather", "--max", "300")
	require.NoError(t, err)
	require.Contains(t, out, "Leather Boots")
	require.Contains(t, out, "1 products")

	out, err = run(t, "--config", cfg, "search")
	require.NoError(t, err)
	require.Contains(t, out, "10 products")

	_, err = run(t, "--config", cfg, "search", "--min", "15")
	require.Error(t, err)
	_, err = run(t, "--config", cfg, "search", "--min", "500", "--max", "100")
	require.Error(t, err)
}

func TestUnknownSource(t *testing.T) {
	cfg := writeConfig(t, "carrier-pigeon")
	_, err := run(t, "--config", cfg, "search")
	require.ErrorIs(t, err, config.ErrUnknownSource)
}

func TestSliderImages(t *testing.T) {
	imgs := sliderImages([]string{"a.jpg", "b.jpg"})
	require.Len(t, imgs, 2)
	require.Equal(t, "slide-2", imgs[1].ID)
	require.Equal(t, "b.jpg", imgs[1].Ref)
	require.Empty(t, sliderImages(nil))
}
