package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestSetRedisPool(t *testing.T) {
	mr := miniredis.RunT(t)
	c := Config{Host: mr.Host(), Port: mr.Port(), Db: "0"}

	client, err := SetRedisPool(context.Background(), c)
	if err != nil {
		t.Fatalf("SetRedisPool: %v", err)
	}
	defer client.Close()
	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatal(err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Errorf("stored %q, want %q", got, "v")
	}
}

func TestSetRedisPoolBadDb(t *testing.T) {
	for _, db := range []string{"", "x", "-1", "16"} {
		c := Config{Host: "localhost", Port: "6379", Db: db}
		if _, err := SetRedisPool(context.Background(), c); err == nil {
			t.Errorf("db %q: expected error", db)
		}
	}
}

func TestSetRedisPoolUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	c := Config{Host: mr.Host(), Port: mr.Port(), Db: "0"}
	mr.Close()
	if _, err := SetRedisPool(context.Background(), c); err == nil {
		t.Error("expected ping error")
	}
}
