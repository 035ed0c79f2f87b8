package models

import (
	"strconv"
	"time"

	"campus_backend/config"
)

// Tenant is one school. The provisioning core reads tenants, it never mutates them.
type Tenant struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name" gorm:"size:128"`
	Status    string    `json:"status" gorm:"size:16;default:'active'"` // active or suspended
}

const TenantStatusActive = "active"

func (tenant *Tenant) IsActive() bool {
	return tenant.Status == TenantStatusActive
}

func GetTenantCacheKey(tenantID int) string {
	return "campus_tenant:" + strconv.Itoa(tenantID)
}

// LoadTenantByID return value `err` is directly from DB.Take()
func LoadTenantByID(tenantID int) (*Tenant, error) {
	var tenant Tenant
	cacheKey := GetTenantCacheKey(tenantID)
	if config.GetCache(cacheKey, &tenant) != nil {
		err := DB.Take(&tenant, tenantID).Error
		if err != nil {
			return nil, err
		}
		_ = config.SetCache(cacheKey, tenant, time.Duration(config.Config.TenantCacheExpire)*time.Minute)
	}
	return &tenant, nil
}
