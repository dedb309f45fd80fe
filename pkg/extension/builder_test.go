// pkg/extension/builder_test.go
package extension_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigkit/extbuild/pkg/extension"
	"github.com/sigkit/extbuild/pkg/pkgconf"
	"github.com/sigkit/extbuild/pkg/toolbox"
)

func stubProvider(t *testing.T, body string) *pkgconf.Client {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("provider stubs require /bin/sh")
	}

	path := filepath.Join(t.TempDir(), "pkg-config")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return pkgconf.NewClient(&pkgconf.Config{Binary: path})
}

func TestBuild(t *testing.T) {
	realInclude := t.TempDir()
	realLib := t.TempDir()
	client := stubProvider(t, fmt.Sprintf(
		`echo "-I%s -L%s -lcore -lsupport"`, realInclude, realLib))
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	d, err := builder.Build(context.Background(), "core", "sigkit-core-")

	require.NoError(t, err)
	assert.Equal(t, "core", d.Name)
	assert.Equal(t, []string{realInclude}, d.IncludeDirs)
	assert.Equal(t, []string{realLib}, d.LibraryDirs)
	assert.Equal(t, []string{realLib}, d.RuntimeLibraryDirs)
	assert.Equal(t, []string{"core", "support"}, d.Libraries)
	assert.Empty(t, d.Sources)
}

func TestBuild_FiltersMissingDirectories(t *testing.T) {
	realLib := t.TempDir()
	client := stubProvider(t, fmt.Sprintf(
		`echo "-I/definitely/not/here -L%s -L/nor/here -lcore"`, realLib))
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	d, err := builder.Build(context.Background(), "core", "sigkit-core-")

	require.NoError(t, err)
	assert.Empty(t, d.IncludeDirs)
	assert.Equal(t, []string{realLib}, d.LibraryDirs)
}

func TestBuild_CagingRootComesFirst(t *testing.T) {
	realLib := t.TempDir()
	client := stubProvider(t, fmt.Sprintf(`echo "-L%s -lcore"`, realLib))
	info := &toolbox.Info{
		Version:    "2.4.1",
		LibDir:     "/usr/lib",
		IncludeDir: "/usr/include",
	}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{
		CagingRoot: "/stage",
		ABISuffix:  "24",
	})

	d, err := builder.Build(context.Background(), "core", "sigkit-core-")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/stage", "usr", "lib"), realLib}, d.LibraryDirs)
	assert.Equal(t, []string{filepath.Join("/stage", "usr", "include")}, d.IncludeDirs)
}

func TestBuild_PlaceholderSource(t *testing.T) {
	client := stubProvider(t, `echo "-lcore"`)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{
		ABISuffix:         "24",
		PlaceholderSource: true,
	})

	d, err := builder.Build(context.Background(), "core", "sigkit-core-")

	require.NoError(t, err)
	assert.Equal(t, []string{extension.PlaceholderSource}, d.Sources)
}

func TestBuild_NoLibrariesIsFatal(t *testing.T) {
	client := stubProvider(t, `echo "-I/usr/include"`)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	d, err := builder.Build(context.Background(), "core", "sigkit-core-")

	require.Error(t, err)
	assert.Nil(t, d)

	var unresolved *extension.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "core", unresolved.Name)
	assert.Equal(t, "sigkit-core-24", unresolved.Package)
}

// dispatchProvider answers per package identity: "good" packages resolve,
// "empty" packages resolve to no libraries, everything else is unknown.
func dispatchProvider(t *testing.T) *pkgconf.Client {
	return stubProvider(t, `case "$*" in
*sigkit-good-24*) echo "-lgood" ;;
*sigkit-empty-24*) echo "" ;;
*) exit 1 ;;
esac`)
}

func TestBuildAll_SkipsAbsentOptionals(t *testing.T) {
	client := dispatchProvider(t)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	specs := []extension.Spec{
		{Name: "missing", Package: "sigkit-missing-", Optional: true},
		{Name: "good", Package: "sigkit-good-"},
	}

	descriptors, err := builder.BuildAll(context.Background(), specs, true)

	require.NoError(t, err)
	require.Len(t, descriptors, 1)
	assert.Equal(t, "good", descriptors[0].Name)
}

func TestBuildAll_StopOnFailure(t *testing.T) {
	client := dispatchProvider(t)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	specs := []extension.Spec{
		{Name: "empty", Package: "sigkit-empty-"},
		{Name: "good", Package: "sigkit-good-"},
	}

	descriptors, err := builder.BuildAll(context.Background(), specs, true)

	require.Error(t, err)
	var unresolved *extension.UnresolvedError
	assert.ErrorAs(t, err, &unresolved)
	assert.Empty(t, descriptors)
}

func TestBuildAll_ContinueOnFailure(t *testing.T) {
	client := dispatchProvider(t)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	specs := []extension.Spec{
		{Name: "empty", Package: "sigkit-empty-"},
		{Name: "good", Package: "sigkit-good-"},
	}

	descriptors, err := builder.BuildAll(context.Background(), specs, false)

	require.Error(t, err, "first failure is still reported")
	require.Len(t, descriptors, 1)
	assert.Equal(t, "good", descriptors[0].Name)
}

func TestBuildAll_CanceledContext(t *testing.T) {
	client := dispatchProvider(t)
	info := &toolbox.Info{Version: "2.4.1"}
	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{ABISuffix: "24"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	descriptors, err := builder.BuildAll(ctx, []extension.Spec{{Name: "good", Package: "sigkit-good-"}}, true)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, descriptors)
}
