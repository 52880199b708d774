package html

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
	"github.com/keshavk21/Think41/core/cache"
)

const (
	navTTL      int64 = 300
	navRedisTTL       = 5 * time.Minute
)

// redisNavKey namespaces the shared fragment so viewer replicas on one Redis
// do not collide with other applications.
const redisNavKey = "viewer:" + cache.KeyDepartmentNav

// DepartmentNavCached returns the department sidebar fragment. Lookup order:
// shared Redis fragment when configured, in-process cache, then a render
// from the warmed department list or a live fetch. Any failure yields an
// empty fragment; the page renders without the sidebar rather than failing.
func DepartmentNavCached(ctx context.Context, client *catalog.Client, r *Renderer) string {
	if config.RedisClient != nil {
		if s, err := config.RedisClient.Get(ctx, redisNavKey).Result(); err == nil && s != "" {
			return s
		}
	}

	v, err := cache.GetInstance().GetOrSet(cache.KeyDepartmentNav, navTTL, []string{cache.TagDepartments}, func() (interface{}, error) {
		departments, err := departmentsCached(ctx, client)
		if err != nil {
			return nil, err
		}
		fragment, err := r.DepartmentNav(departments)
		if err != nil {
			return nil, err
		}
		return fragment, nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("[HTML] department nav unavailable")
		return ""
	}
	fragment := v.(string)

	if config.RedisClient != nil && fragment != "" {
		if err := config.RedisClient.Set(ctx, redisNavKey, fragment, navRedisTTL).Err(); err != nil {
			log.Debug().Err(err).Msg("[HTML] nav fragment redis store failed")
		}
	}
	return fragment
}

// departmentsCached prefers the warm job's cached list over a live fetch.
func departmentsCached(ctx context.Context, client *catalog.Client) ([]catalog.Department, error) {
	if v, ok := cache.GetInstance().Get(cache.KeyDepartmentList); ok {
		if departments, ok := v.([]catalog.Department); ok {
			return departments, nil
		}
	}
	return client.Departments(ctx)
}
