package crop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crops.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Crops: []Def{
			{
				InternalName:          "radish",
				DisplayName:           "Radish",
				GrowthDurationSeconds: 60,
				PlantingCost:          30,
				YieldResource:         "money",
				YieldAmount:           50,
			},
			{
				InternalName:          "wheat",
				DisplayName:           "Wheat",
				GrowthDurationSeconds: 600,
				PlantingCost:          80,
				YieldResource:         "money",
				YieldAmount:           180,
			},
		},
	}
}

func TestCropLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"description": "Test crops",
			"crops": [
				{
					"internal_name": "radish",
					"display_name": "Radish",
					"description": "A test crop",
					"growth_duration_seconds": 60,
					"planting_cost": 30,
					"yield_resource": "money",
					"yield_amount": 50
				}
			]
		}`
		tmpFile := createTempFile(t, content)

		config, err := loader.Load(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Len(t, config.Crops, 1)
		assert.Equal(t, "radish", config.Crops[0].InternalName)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read crop config file")
	})

	t.Run("schema rejects bad crop", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"crops": [
				{
					"internal_name": "radish",
					"display_name": "Radish",
					"growth_duration_seconds": 0,
					"planting_cost": 30,
					"yield_resource": "money",
					"yield_amount": 50
				}
			]
		}`
		tmpFile := createTempFile(t, content)

		_, err := loader.Load(tmpFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestCropLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(validConfig()))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("no crops", func(t *testing.T) {
		err := loader.Validate(&Config{Version: "1.0"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("duplicate internal name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Crops[1].InternalName = cfg.Crops[0].InternalName
		err := loader.Validate(cfg)
		assert.True(t, errors.Is(err, ErrDuplicateInternalName))
	})

	t.Run("non-positive growth duration", func(t *testing.T) {
		cfg := validConfig()
		cfg.Crops[0].GrowthDurationSeconds = 0
		assert.ErrorIs(t, loader.Validate(cfg), ErrInvalidConfig)
	})

	t.Run("negative planting cost", func(t *testing.T) {
		cfg := validConfig()
		cfg.Crops[0].PlantingCost = -1
		assert.ErrorIs(t, loader.Validate(cfg), ErrInvalidConfig)
	})

	t.Run("non-positive yield", func(t *testing.T) {
		cfg := validConfig()
		cfg.Crops[0].YieldAmount = 0
		assert.ErrorIs(t, loader.Validate(cfg), ErrInvalidConfig)
	})
}

func TestCropLoader_Catalog(t *testing.T) {
	loader := NewLoader()

	catalog, err := loader.Catalog(validConfig())
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	radish, err := catalog.Get("radish")
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, radish.GrowthDuration)
	assert.Equal(t, int64(30), radish.PlantingCost)
	assert.Equal(t, int64(50), radish.YieldAmount)

	all := catalog.All()
	require.Len(t, all, 2)
	// Config order is preserved.
	assert.Equal(t, "radish", all[0].InternalName)
	assert.Equal(t, "wheat", all[1].InternalName)
}

func TestCatalog_UnknownCrop(t *testing.T) {
	catalog, err := NewCatalog(nil)
	require.NoError(t, err)

	_, err = catalog.Get("moonfruit")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown crop type")
}

func TestShippedCropConfig(t *testing.T) {
	// The committed config must load, validate and build a catalog.
	loader := NewLoader()

	config, err := loader.Load(filepath.Join("..", "..", "configs", "crops.json"))
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))

	catalog, err := loader.Catalog(config)
	require.NoError(t, err)
	assert.Greater(t, catalog.Len(), 0)
}
