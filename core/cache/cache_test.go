package cache

import (
	"errors"
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.m.Store("k", cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("k"); ok {
		t.Error("Get expired key: want false")
	}
	if _, stored := c.m.Load("k"); stored {
		t.Error("expired entry should be evicted on read")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 0, nil)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	def := "default"
	if got := c.GetOrDefault("k", def); got != def {
		t.Errorf("GetOrDefault missing = %v, want %v", got, def)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", def); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestGetOrSet(t *testing.T) {
	c := NewCache()
	calls := 0
	fill := func() (interface{}, error) {
		calls++
		return "filled", nil
	}
	got, err := c.GetOrSet("k", 0, nil, fill)
	if err != nil {
		t.Fatalf("GetOrSet: %v", err)
	}
	if got != "filled" {
		t.Errorf("GetOrSet = %v, want filled", got)
	}
	if _, err := c.GetOrSet("k", 0, nil, fill); err != nil {
		t.Fatalf("GetOrSet cached: %v", err)
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestGetOrSet_FillError(t *testing.T) {
	c := NewCache()
	wantErr := errors.New("boom")
	_, err := c.GetOrSet("k", 0, nil, func() (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrSet err = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("failed fill should not store a value")
	}
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if _, ok := c.Get("dm1"); ok {
		t.Error("DeleteMany: dm1 should be gone")
	}
	if _, ok := c.Get("dm2"); ok {
		t.Error("DeleteMany: dm2 should be gone")
	}
}

func TestSetN_GetN_DeleteN(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"products", 2}, "composite-val", 0, nil)
	got, ok := c.GetN("products", 2)
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	c.DeleteN("products", 2)
	if _, ok = c.GetN("products", 2); ok {
		t.Error("DeleteN: key should be gone")
	}
}

func TestGetMany(t *testing.T) {
	c := NewCache()
	c.Set("gm1", "v1", 0, nil)
	c.Set("gm2", "v2", 0, nil)
	results := c.GetMany("gm1", "gm2", "gm-missing")
	if len(results) != 3 {
		t.Fatalf("GetMany len = %d, want 3", len(results))
	}
	if results[0] != "v1" {
		t.Errorf("GetMany gm1 = %v, want v1", results[0])
	}
	if results[1] != "v2" {
		t.Errorf("GetMany gm2 = %v, want v2", results[1])
	}
	if results[2] != nil {
		t.Error("GetMany gm-missing: want nil")
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("tag-k1", "v1", 0, nil)
	c.Set("tag-k2", "v2", 0, nil)
	c.TagKey("tag-k1", []string{"t1"})
	c.TagKey("tag-k2", []string{"t1"})

	keys := c.GetKeysByTag("t1")
	if len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("t1")
	if _, ok := c.Get("tag-k1"); ok {
		t.Error("DeleteByTag: tag-k1 should be gone")
	}
	if _, ok := c.Get("tag-k2"); ok {
		t.Error("DeleteByTag: tag-k2 should be gone")
	}
}

func TestSet_TagsArgument(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, []string{"departments"})
	keys := c.GetKeysByTag("departments")
	if len(keys) != 1 || keys[0] != "k" {
		t.Errorf("GetKeysByTag = %v, want [k]", keys)
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, []string{"t2"})
	c.Delete("k")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}

func TestUntagKey(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, []string{"t3"})
	c.UntagKey("k", []string{"t3"})
	if keys := c.GetKeysByTag("t3"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after UntagKey = %d keys, want 0", len(keys))
	}
	// value itself stays
	if _, ok := c.Get("k"); !ok {
		t.Error("UntagKey should not delete the value")
	}
}

func TestIterateFilter(t *testing.T) {
	c := NewCache()
	c.Set("if1", 10, 0, nil)
	c.Set("if2", 20, 0, nil)
	c.Set("if3", 30, 0, nil)

	results := c.IterateFilter(func(key, value interface{}) bool {
		return key == "if1" || key == "if3"
	})
	if len(results) != 2 {
		t.Errorf("IterateFilter = %d results, want 2", len(results))
	}
	has10, has30 := false, false
	for _, v := range results {
		if v == 10 {
			has10 = true
		}
		if v == 30 {
			has30 = true
		}
	}
	if !has10 || !has30 {
		t.Errorf("IterateFilter values = %v, want 10 and 30", results)
	}
}

func TestIterateFilter_SkipsExpired(t *testing.T) {
	c := NewCache()
	c.Set("live", 1, 0, nil)
	c.m.Store("dead", cacheItem{Value: 2, ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	results := c.IterateFilter(func(_, _ interface{}) bool { return true })
	if len(results) != 1 {
		t.Fatalf("IterateFilter = %d results, want 1", len(results))
	}
	if results[0] != 1 {
		t.Errorf("IterateFilter value = %v, want 1", results[0])
	}
}
