package compiler

import (
	"sync"
)

type compiledCache struct {
	sync.RWMutex
	cache map[string]*Kernel
}

func newCache() *compiledCache {
	return &compiledCache{
		cache: make(map[string]*Kernel),
	}
}

func (cc *compiledCache) Get(name string) *Kernel {
	cc.RLock()
	defer cc.RUnlock()
	return cc.cache[name]
}

func (cc *compiledCache) Add(name string, k *Kernel) {
	cc.Lock()
	defer cc.Unlock()
	cc.cache[name] = k
}

func (cc *compiledCache) Del(name string) {
	cc.Lock()
	defer cc.Unlock()
	delete(cc.cache, name)
}

var (
	cache     = newCache()
	compileMu sync.Mutex
)

// Load returns the kernel compiled with the given name and source, compiling
// and caching it if it's the first time it's requested or if the source changed.
func Load(name, source string) (*Kernel, error) {
	if k := cache.Get(name); k != nil && k.Is(source) {
		return k, nil
	}

	compileMu.Lock()
	defer compileMu.Unlock()

	// somebody else could have compiled it while we were waiting
	if k := cache.Get(name); k != nil && k.Is(source) {
		return k, nil
	}

	k, err := Compile(name, source, DefaultPoolSize)
	if err != nil {
		return nil, err
	}
	cache.Add(name, k)

	return k, nil
}

// Default returns the compiled built-in kernel.
func Default() (*Kernel, error) {
	return Load(DefaultName, Source)
}

// Forget removes a kernel from the cache.
func Forget(name string) {
	cache.Del(name)
}
