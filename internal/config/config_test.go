package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, StoragePostgres, cfg.Storage.UserStore)
	assert.Equal(t, "blog", cfg.Database.Database)
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadTestEnvironmentSuffixesDatabase(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_NAME", "blog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "blog_test", cfg.Database.Database)

	dbCfg, err := cfg.LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "blog_test", dbCfg.DBName)
	assert.Equal(t, 5*time.Minute, dbCfg.MaxConnLifetime)
	assert.Equal(t, 10*time.Second, dbCfg.ConnectTimeout)
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_EXPIRES", "15m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("USER_STORE", UserStoreMongo)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, 4, cfg.Security.BcryptCost)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, UserStoreMongo, cfg.Storage.UserStore)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		valid bool
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}, false},
		{"unknown user store", map[string]string{"USER_STORE": "ldap"}, false},
		{"bcrypt too low", map[string]string{"BCRYPT_COST": "2"}, false},
		{"production default secret", map[string]string{"APP_ENV": "production", "DB_PASSWORD": "x"}, false},
		{"production configured", map[string]string{"APP_ENV": "production", "DB_PASSWORD": "x", "JWT_SECRET": "s3cret"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "development")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadDatabaseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_RETRY_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	_, err = cfg.LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_RETRY_DELAY")
}
