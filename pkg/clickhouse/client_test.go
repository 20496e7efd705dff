package clickhouse

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(ClientConfig{
		Host:         "ch.local",
		Port:         9000,
		Database:     "suanming",
		User:         "default",
		Password:     "p@ss",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		MaxExecTime:  30 * time.Second,
		AsyncInsert:  true,
		WaitForAsync: false,
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "clickhouse", u.Scheme)
	assert.Equal(t, "ch.local:9000", u.Host)
	assert.Equal(t, "/suanming", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss", pw)

	q := u.Query()
	assert.Equal(t, "5s", q.Get("dial_timeout"))
	assert.Equal(t, "10s", q.Get("read_timeout"))
	assert.Equal(t, "30", q.Get("max_execution_time"))
	assert.Equal(t, "1", q.Get("async_insert"))
	assert.Equal(t, "0", q.Get("wait_for_async_insert"))
}

func TestBuildDSNHTTP(t *testing.T) {
	dsn := BuildDSN(ClientConfig{Host: "h", Port: 8123, Database: "d", User: "u", UseHTTP: true})
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Empty(t, u.RawQuery)
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient(context.Background())
	assert.ErrorContains(t, err, "host is required")
}
