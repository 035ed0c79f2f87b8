package models

import (
	"os"
	"testing"

	"campus_backend/config"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	InitDB()

	// seed an active tenant and its administrator
	DB.Create(&Tenant{ID: 1, Name: "Springfield Elementary", Status: TenantStatusActive})
	DB.Create(&Tenant{ID: 2, Name: "Shelbyville High", Status: "suspended"})
	DB.Create(&User{
		ID:       1,
		TenantID: 1,
		Email:    "admin@springfield.edu",
		Nickname: "admin",
		Role:     RoleTenantAdmin,
		Status:   UserStatusActive,
	})

	os.Exit(m.Run())
}
