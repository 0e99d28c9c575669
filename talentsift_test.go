package talentsift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	t.Run("create new system", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "catalog_db")
		system, err := NewSystem(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, system)
		defer system.Close()

		assert.NotNil(t, system.CatalogRepository())
		assert.NotNil(t, system.backend)
		assert.NotNil(t, system.provider)
	})

	t.Run("in-memory catalog", func(t *testing.T) {
		system, err := NewSystem("", WithInMemoryCatalog())
		require.NoError(t, err)
		require.NotNil(t, system)
		defer system.Close()
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		system, err := NewSystem(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, system)
	})
}

func TestSystem_Close(t *testing.T) {
	system, err := NewSystem("", WithInMemoryCatalog())
	require.NoError(t, err)
	assert.NoError(t, system.Close())
}

func TestSystem_FactoryMethods(t *testing.T) {
	system, err := NewSystem("", WithInMemoryCatalog())
	require.NoError(t, err)
	defer system.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := system.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})
}
