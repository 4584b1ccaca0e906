//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
)

func newTestCatalog() *entities.VersionCatalog {
	return entities.NewVersionCatalog(
		"gradle/libs.versions.toml",
		map[string]string{"okhttp": "4.12.0", "kotlin": "1.9.22"},
		map[string]entities.LibraryDefinition{
			"okhttp-literal": {
				Group: "com.squareup.okhttp3", Name: "okhttp", Version: entities.LiteralVersion("4.12.0"),
			},
			"okhttp-ref": {
				Group: "com.squareup.okhttp3", Name: "okhttp", Version: entities.ReferenceVersion("okhttp"),
			},
			"kotlinx_coroutines_core": {
				Group: "org.jetbrains.kotlinx", Name: "kotlinx-coroutines-core", Version: entities.LiteralVersion("1.7.3"),
			},
			"dangling":   {Group: "com.example", Name: "dangling", Version: entities.ReferenceVersion("missing")},
			"bom-member": {Group: "androidx.compose.ui", Name: "ui"},
			"broken":     {Group: "com.example", Version: entities.LiteralVersion("1.0")},
		},
		map[string]entities.PluginDefinition{
			"kotlinJvm":   {ID: "org.jetbrains.kotlin.jvm", Version: entities.ReferenceVersion("kotlin")},
			"javaLibrary": {ID: "java-library"},
			"orphan":      {ID: "com.example.orphan", Version: entities.ReferenceVersion("missing")},
		},
	)
}

func TestVersionCatalogResolveLibrary(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a version reference like the equivalent literal", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		literal, literalErr := catalog.ResolveLibrary("okhttp-literal")
		reference, referenceErr := catalog.ResolveLibrary("okhttp-ref")

		// then
		require.NoError(t, literalErr)
		require.NoError(t, referenceErr)
		assert.Equal(t, literal, reference)
		assert.Equal(t, "4.12.0", *reference.Version)
	})

	t.Run("should treat dots, dashes and underscores as the same separator", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		for _, alias := range []string{"kotlinx.coroutines.core", "kotlinx-coroutines-core", "kotlinx_coroutines_core"} {
			// when
			dep, err := catalog.ResolveLibrary(alias)

			// then
			require.NoError(t, err, alias)
			assert.Equal(t, "org.jetbrains.kotlinx:kotlinx-coroutines-core", dep.Key())
		}
	})

	t.Run("should fail for an unknown alias", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		_, err := catalog.ResolveLibrary("retrofit")

		// then
		require.ErrorIs(t, err, entities.ErrAliasNotFound)
	})

	t.Run("should fail for a dangling version reference", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		_, err := catalog.ResolveLibrary("dangling")

		// then
		require.ErrorIs(t, err, entities.ErrVersionNotFound)
	})

	t.Run("should fail for an entry without a name", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		_, err := catalog.ResolveLibrary("broken")

		// then
		require.ErrorIs(t, err, entities.ErrMalformedEntry)
	})

	t.Run("should return coordinates for an unversioned entry", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		dep, err := catalog.ResolveLibrary("bom.member")

		// then
		require.ErrorIs(t, err, entities.ErrUnversioned)
		assert.Equal(t, "androidx.compose.ui:ui", dep.Key())
		assert.Nil(t, dep.Version)
	})
}

func TestVersionCatalogResolvePlugin(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a plugin version reference", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		plugin, err := catalog.ResolvePlugin("kotlinJvm")

		// then
		require.NoError(t, err)
		assert.Equal(t, "org.jetbrains.kotlin.jvm", plugin.ID)
		require.NotNil(t, plugin.Version)
		assert.Equal(t, "1.9.22", *plugin.Version)
	})

	t.Run("should accept plugins without a version", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		plain, plainErr := catalog.ResolvePlugin("javaLibrary")
		orphan, orphanErr := catalog.ResolvePlugin("orphan")

		// then
		require.NoError(t, plainErr)
		require.NoError(t, orphanErr)
		assert.Nil(t, plain.Version)
		assert.Nil(t, orphan.Version)
	})

	t.Run("should fail for an unknown plugin alias", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := newTestCatalog()

		// when
		_, err := catalog.ResolvePlugin("springBoot")

		// then
		require.ErrorIs(t, err, entities.ErrAliasNotFound)
	})
}

func TestCatalogSet(t *testing.T) {
	t.Parallel()

	t.Run("should let the first catalog win", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.NewVersionCatalog("a/libs.versions.toml", nil, map[string]entities.LibraryDefinition{
			"okhttp": {Group: "com.squareup.okhttp3", Name: "okhttp", Version: entities.LiteralVersion("4.10.0")},
		}, nil)
		second := entities.NewVersionCatalog("b/libs.versions.toml", nil, map[string]entities.LibraryDefinition{
			"okhttp": {Group: "com.squareup.okhttp3", Name: "okhttp", Version: entities.LiteralVersion("4.12.0")},
		}, nil)
		set := entities.NewCatalogSet(first, second)

		// when
		dep, err := set.ResolveLibrary("okhttp")

		// then
		require.NoError(t, err)
		assert.Equal(t, "4.10.0", *dep.Version)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("should prefer a versioned match in a later catalog over an unversioned one", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.NewVersionCatalog("a/libs.versions.toml", nil, map[string]entities.LibraryDefinition{
			"ui": {Group: "androidx.compose.ui", Name: "ui"},
		}, nil)
		second := entities.NewVersionCatalog("b/libs.versions.toml", nil, map[string]entities.LibraryDefinition{
			"ui": {Group: "androidx.compose.ui", Name: "ui", Version: entities.LiteralVersion("1.6.0")},
		}, nil)
		set := entities.NewCatalogSet(first, second)

		// when
		dep, err := set.ResolveLibrary("ui")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.6.0", *dep.Version)
	})

	t.Run("should resolve nothing from a nil set", func(t *testing.T) {
		t.Parallel()

		// given
		var set *entities.CatalogSet

		// when
		_, libErr := set.ResolveLibrary("okhttp")
		_, pluginErr := set.ResolvePlugin("kotlinJvm")

		// then
		require.ErrorIs(t, libErr, entities.ErrAliasNotFound)
		require.ErrorIs(t, pluginErr, entities.ErrAliasNotFound)
		assert.Zero(t, set.Len())
	})
}

func TestCatalogSetResolveAccessor(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a libs accessor path", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet(newTestCatalog())

		// when
		dep, ok := set.ResolveAccessor("libs", "kotlinx.coroutines.core")

		// then
		require.True(t, ok)
		assert.Equal(t, "1.7.3", *dep.Version)
	})

	t.Run("should accept unversioned entries as managed elsewhere", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet(newTestCatalog())

		// when
		dep, ok := set.ResolveAccessor("libs", "bom.member")

		// then
		require.True(t, ok)
		assert.Nil(t, dep.Version)
	})

	t.Run("should never resolve project accessors", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet(entities.NewVersionCatalog("libs.versions.toml", nil,
			map[string]entities.LibraryDefinition{
				"core": {Group: "com.example", Name: "core", Version: entities.LiteralVersion("1.0")},
			}, nil))

		// when
		_, ok := set.ResolveAccessor("projects", "core")

		// then
		assert.False(t, ok)
	})

	t.Run("should prefer a compose catalog entry", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet(entities.NewVersionCatalog("libs.versions.toml", nil,
			map[string]entities.LibraryDefinition{
				"compose-runtime": {
					Group: "org.jetbrains.compose.runtime", Name: "runtime", Version: entities.LiteralVersion("1.5.11"),
				},
			}, nil))

		// when
		dep, ok := set.ResolveAccessor("compose", "runtime")

		// then
		require.True(t, ok)
		assert.Equal(t, "org.jetbrains.compose.runtime:runtime", dep.Key())
		assert.Equal(t, "1.5.11", *dep.Version)
	})

	t.Run("should synthesize an unversioned compose artifact", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet()

		// when
		dep, ok := set.ResolveAccessor("compose", "material3")

		// then
		require.True(t, ok)
		assert.Equal(t, "org.jetbrains.compose:material3", dep.Key())
		assert.Nil(t, dep.Version)
	})

	t.Run("should not synthesize artifacts for other roots", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewCatalogSet()

		// when
		_, ok := set.ResolveAccessor("androidx", "material3")

		// then
		assert.False(t, ok)
	})
}
