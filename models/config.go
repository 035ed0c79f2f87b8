package models

import (
	"time"

	"campus_backend/config"
)

// Config is the single runtime-editable settings row
type Config struct {
	ID           int    `json:"id"`
	AutoActivate bool   `json:"auto_activate" gorm:"default:true"` // provisioned accounts start active; otherwise pending review
	Notice       string `json:"notice"`
}

const configCacheName = "campus_backend_config"
const configCacheExpire = 24 * time.Hour

func LoadConfig(configObjectPtr *Config) error {
	if config.GetCache(configCacheName, configObjectPtr) != nil {
		if err := DB.First(configObjectPtr).Error; err != nil {
			return err
		}
		_ = config.SetCache(configCacheName, *configObjectPtr, configCacheExpire)
	}
	return nil
}

func UpdateConfig(configObjectPtr *Config) error {
	// Select lists the columns explicitly so that false/empty values are written too
	err := DB.Model(&Config{ID: 1}).Select("auto_activate", "notice").Updates(configObjectPtr).Error
	if err != nil {
		return err
	}
	_ = config.SetCache(configCacheName, *configObjectPtr, configCacheExpire)
	return nil
}
