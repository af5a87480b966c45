package internal

import (
	"time"
)

type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	StoreBackend      string        `env:"STORE_BACKEND,default=badger"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	RedisAddr         string        `env:"REDIS_ADDR,default=localhost:6379"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	GraceTicks        int           `env:"GRACE_TICKS,default=5"`
	GraceTickInterval time.Duration `env:"GRACE_TICK_INTERVAL,default=1s"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	DebugPort         int           `env:"DEBUG_PORT,default=8090"`
}
