// extbuild_test.go
package extbuild_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigkit/extbuild"
)

// stubProvider writes a provider script answering version, directory and
// flag queries for a small fake toolbox.
func stubProvider(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("provider stubs require /bin/sh")
	}

	path := filepath.Join(t.TempDir(), "pkg-config")
	script := `#!/bin/sh
case "$*" in
*--modversion*) echo 2.4.1 ;;
*--variable=libdir*) echo /usr/lib ;;
*--variable=includedir*) echo /usr/include ;;
*sigkit-core-24*) echo "-lcore" ;;
*) exit 1 ;;
esac
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestNew(t *testing.T) {
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = stubProvider(t)

	o, err := extbuild.New(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "2.4.1", o.Toolbox().Version)
	assert.Equal(t, "/usr/lib", o.Toolbox().LibDir)
}

func TestNew_ToolboxUnavailableIsFatal(t *testing.T) {
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = filepath.Join(t.TempDir(), "absent-provider")

	o, err := extbuild.New(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, o)
	assert.True(t, errors.Is(err, extbuild.ErrVersionUnknown))

	var sessionErr *extbuild.Error
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "loading toolbox", sessionErr.Op)
}

func TestNew_RuntimeVersionOverride(t *testing.T) {
	falseVal := false
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = stubProvider(t)
	cfg.RuntimeVersion = "3.11.2"
	cfg.PlaceholderSource = &falseVal

	o, err := extbuild.New(context.Background(), cfg)
	require.NoError(t, err)

	// sigkit-core-311 is unknown to the stub, so the override is visible
	// through the failed resolution.
	_, buildErr := o.Build(context.Background(), "core", "sigkit-core-")
	assert.Error(t, buildErr)
}

func TestNew_BadRuntimeVersion(t *testing.T) {
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = stubProvider(t)
	cfg.RuntimeVersion = "garbage"

	_, err := extbuild.New(context.Background(), cfg)

	require.Error(t, err)
	var sessionErr *extbuild.Error
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "deriving ABI suffix", sessionErr.Op)
}

func TestOrchestratorBuild(t *testing.T) {
	falseVal := false
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = stubProvider(t)
	cfg.PlaceholderSource = &falseVal

	o, err := extbuild.New(context.Background(), cfg)
	require.NoError(t, err)

	d, err := o.Build(context.Background(), "core", "sigkit-core-")

	require.NoError(t, err)
	assert.Equal(t, "core", d.Name)
	assert.Equal(t, []string{"core"}, d.Libraries)
}

func TestOrchestratorBuild_WrapsFailures(t *testing.T) {
	cfg := extbuild.DefaultConfig()
	cfg.PkgConfig = stubProvider(t)

	o, err := extbuild.New(context.Background(), cfg)
	require.NoError(t, err)

	_, err = o.Build(context.Background(), "unknown", "sigkit-unknown-")

	require.Error(t, err)
	var sessionErr *extbuild.Error
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "building", sessionErr.Op)
	assert.Equal(t, "unknown", sessionErr.Extension)
}

func TestErrorFormatting(t *testing.T) {
	inner := errors.New("boom")

	withExt := &extbuild.Error{Op: "building", Extension: "core", Err: inner}
	assert.Contains(t, withExt.Error(), "building")
	assert.Contains(t, withExt.Error(), "core")
	assert.ErrorIs(t, withExt, inner)

	withoutExt := &extbuild.Error{Op: "loading toolbox", Err: inner}
	assert.Contains(t, withoutExt.Error(), "loading toolbox")
}
