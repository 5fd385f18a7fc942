// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateConfig(mode string) config.StructuredConfig {
	return config.StructuredConfig{
		Gate: config.Gate{Mode: mode, URL: "http://localhost:1/decide", Timeout: time.Second, IdleTTL: time.Minute},
		RateLimit: config.RateLimit{
			Admin: 20, User: 10, Guest: 5, Window: time.Minute,
		},
	}
}

func TestNew(t *testing.T) {
	log := logger.Nop()

	g, err := New(gateConfig(config.GateModeOff), nil, log)
	require.NoError(t, err)
	assert.IsType(t, openGate{}, g)

	g, err = New(gateConfig(config.GateModeLocal), nil, log)
	require.NoError(t, err)
	assert.IsType(t, &LocalGate{}, g)

	g, err = New(gateConfig(config.GateModeRemote), nil, log)
	require.NoError(t, err)
	assert.IsType(t, &remoteGate{}, g)

	mr := miniredis.RunT(t)
	g, err = New(gateConfig(config.GateModeRedis), redis.NewClient(&redis.Options{Addr: mr.Addr()}), log)
	require.NoError(t, err)
	assert.IsType(t, &redisGate{}, g)

	_, err = New(gateConfig(config.GateModeRedis), nil, log)
	assert.ErrorIs(t, err, ErrNilRedisClient)

	_, err = New(gateConfig("bogus"), nil, log)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
