package database

import (
	"net"
	"strconv"
	"testing"

	"phish_trainer/internal/config"
	"phish_trainer/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard, TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openMemory(t)
	cfg := config.SeedConfig{AdminPassword: "admin123", SampleTest: true}

	require.NoError(t, Seed(db, cfg))
	require.NoError(t, Seed(db, cfg))

	var users, tests, questions int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Test{}).Count(&tests)
	db.Model(&model.Question{}).Count(&questions)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, tests)
	assert.EqualValues(t, 3, questions)

	var admin model.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.Admin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	var q model.Question
	require.NoError(t, db.Order("id").First(&q).Error)
	assert.Equal(t, []int{0, 1, 2}, q.CorrectIndex)
	assert.Len(t, q.Options, 4)
}

func TestSeedWithoutSampleTest(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Seed(db, config.SeedConfig{AdminPassword: "pw"}))

	var tests int64
	db.Model(&model.Test{}).Count(&tests)
	assert.Zero(t, tests)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.DatabaseConfig{Driver: config.DriverMySQL, Host: "db", Port: 3306, User: "u", DBName: "x", Charset: "utf8mb4"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	rdb, err := InitRedis(&config.RedisConfig{Enabled: true, Host: host, Port: p})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()

	mr.Close()
	_, err = InitRedis(&config.RedisConfig{Enabled: true, Host: host, Port: p})
	assert.Error(t, err)
}
