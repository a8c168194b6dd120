package cache

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// These exercise compress/decompress directly since dialing a real Redis
// isn't available here; NewRedisBackend's connection setup is left
// untested for the same reason.

func TestCompressRoundTripAboveThreshold(t *testing.T) {
	b := &redisBackend{cfg: RedisConfig{EnableCompression: true}}
	payload := []byte(strings.Repeat("a", compressionThreshold+1))

	compressed, err := b.compress(payload)
	require.NoError(t, err)
	require.True(t, len(compressed) > 0 && compressed[0] == compressionMarker)
	require.Less(t, len(compressed), len(payload), "a repeated-byte payload should compress smaller")

	decompressed, err := b.decompress(compressed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, decompressed))
}

func TestCompressSkipsBelowThreshold(t *testing.T) {
	b := &redisBackend{cfg: RedisConfig{EnableCompression: true}}
	payload := []byte("short")

	compressed, err := b.compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed, "payloads under the threshold pass through uncompressed")

	decompressed, err := b.decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestCompressDisabled(t *testing.T) {
	b := &redisBackend{cfg: RedisConfig{EnableCompression: false}}
	payload := []byte(strings.Repeat("x", compressionThreshold*2))

	compressed, err := b.compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)
}

func TestDecompressRejectsCorruptData(t *testing.T) {
	b := &redisBackend{}
	corrupt := []byte{compressionMarker, 0x00, 0x01, 0x02}

	_, err := b.decompress(corrupt)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidData)
}
