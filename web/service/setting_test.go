package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placementkit/readiness-panel/database"
	"github.com/placementkit/readiness-panel/database/model"
)

func TestSettingDefaults(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 8080, port)

	basePath, err := service.GetBasePath()
	assert.NoError(t, err)
	assert.Equal(t, "/", basePath)

	multiplier, err := service.GetResumeMultiplier()
	assert.NoError(t, err)
	assert.Equal(t, 15, multiplier)

	secret, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Len(t, secret, 32)
}

func TestGetSecretPersistsOnFirstUse(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	first, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Len(t, first, 32)

	var count int64
	err = database.GetDB().Model(model.Setting{}).Where("key = ?", "secret").Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	second, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSettingPersistence(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	err := service.SetPort(9090)
	assert.NoError(t, err)
	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 9090, port)

	err = service.SetResumeMultiplier(20)
	assert.NoError(t, err)
	multiplier, err := service.GetResumeMultiplier()
	assert.NoError(t, err)
	assert.Equal(t, 20, multiplier)

	err = service.ResetSettings()
	assert.NoError(t, err)
	port, err = service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestGetResumeKeywords(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	keywords, err := service.GetResumeKeywords()
	assert.NoError(t, err)
	assert.Contains(t, keywords, "python")
	assert.Contains(t, keywords, "machine learning")
	assert.Len(t, keywords, 8)

	err = service.setString("resumeKeywords", " go , kubernetes ,, docker ")
	assert.NoError(t, err)

	keywords, err = service.GetResumeKeywords()
	assert.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes", "docker"}, keywords)
}
