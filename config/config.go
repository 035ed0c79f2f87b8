package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
)

const AppName = "campus_backend"

var Config struct {
	Mode     string `env:"MODE" envDefault:"dev"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	DbUrl    string `env:"DB_URL"`
	RedisUrl string `env:"REDIS_URL"`

	// jwt signing config
	JwtSecret         string `env:"JWT_SECRET" envDefault:"campus_backend_secret"`
	AccessExpireTime  int    `env:"ACCESS_EXPIRE_TIME" envDefault:"30"`  // 30 minutes
	RefreshExpireTime int    `env:"REFRESH_EXPIRE_TIME" envDefault:"30"` // 30 days

	// invite config
	InviteCodeLength      int `env:"INVITE_CODE_LENGTH" envDefault:"20"`
	InviteIssueMaxRetry   int `env:"INVITE_ISSUE_MAX_RETRY" envDefault:"5"`
	RedeemStorageMaxRetry int `env:"REDEEM_STORAGE_MAX_RETRY" envDefault:"3"`

	TenantCacheExpire int `env:"TENANT_CACHE_EXPIRE" envDefault:"10"` // minutes

	// redeem endpoint rate limit, per ip
	RedeemRateLimit int `env:"REDEEM_RATE_LIMIT" envDefault:"5"`
	RedeemRateBurst int `env:"REDEEM_RATE_BURST" envDefault:"10"`
}

func InitConfig() {
	var err error
	if err = env.Parse(&Config); err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", &Config)

	initCache()
}
