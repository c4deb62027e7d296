// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *Line](256)
//	l := c.GetOrCreate("Hello", func() *Line { return shape("Hello") })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
