package models

import (
	"errors"
	"log"
	"os"
	"time"

	"campus_backend/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

type Map = map[string]any

var LockingClause = clause.Locking{Strength: "UPDATE"}

var gormConfig = &gorm.Config{
	NamingStrategy: schema.NamingStrategy{
		SingularTable: true, // use singular table name, table for `Invite` would be `invite` with this option enabled
	},
	TranslateError: true, // duplicate key errors become gorm.ErrDuplicatedKey on both mysql and sqlite
	Logger: logger.New(
		log.Default(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	),
}

func InitDB() {
	mysqlDB := func() (*gorm.DB, error) {
		return gorm.Open(mysql.Open(config.Config.DbUrl), gormConfig)
	}
	sqliteDB := func() (*gorm.DB, error) {
		err := os.MkdirAll("data", 0755)
		if err != nil && !os.IsExist(err) {
			panic(err)
		}
		return gorm.Open(sqlite.Open("data/sqlite.db?_busy_timeout=5000"), gormConfig)
	}
	memoryDB := func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000"), gormConfig)
	}

	var err error

	// connect to database with different mode
	switch config.Config.Mode {
	case "production":
		DB, err = mysqlDB()
	case "dev":
		if config.Config.DbUrl == "" {
			DB, err = sqliteDB()
		} else {
			DB, err = mysqlDB()
		}
	case "test":
		DB, err = memoryDB()
	default:
		panic("unsupported mode")
	}

	if err != nil {
		panic(err)
	}

	if config.Config.Mode == "dev" {
		DB = DB.Debug()
	}

	// migrate database
	err = DB.AutoMigrate(
		Tenant{},
		User{},
		Invite{},
		EmailBlacklist{},
		UsageStatus{},
		Config{},
	)
	if err != nil {
		panic(err)
	}

	var configObject Config
	err = DB.First(&configObject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		DB.Create(&configObject)
	}
}
