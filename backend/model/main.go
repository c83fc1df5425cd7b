package model

import (
	"songbox/backend/common"

	"github.com/burugo/thing"
	redisCache "github.com/burugo/thing/drivers/cache/redis"
	"github.com/burugo/thing/drivers/db/sqlite"
)

// InitDB wires the Thing ORM to sqlite (and redis, when enabled), migrates the
// songs and files tables and initializes the per-model ORM handles.
func InitDB() (err error) {
	dbAdapter, err := sqlite.NewSQLiteAdapter(common.SQLitePath)
	if err != nil {
		return err
	}
	var cacheClient thing.CacheClient = nil
	if common.RedisEnabled && common.RDB != nil {
		cacheClient, err = redisCache.NewClient(common.RDB, nil)
		if err != nil {
			return err
		}
	}
	thing.Configure(dbAdapter, cacheClient)

	err = thing.AutoMigrate(&Song{}, &File{})
	if err != nil {
		return err
	}

	if err := FileInit(); err != nil {
		return err
	}
	return SongInit()
}

func CloseDB() error {
	// Thing ORM needs no explicit teardown; kept for symmetry with InitDB.
	return nil
}
