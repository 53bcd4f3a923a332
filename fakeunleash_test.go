package main

import "sync"

// fakeUnleash stands in for the Unleash server so tests can flip features on and off
type fakeUnleash struct {
	sync.RWMutex
	features map[string]bool
}

func (f *fakeUnleash) IsEnabled(feature string) bool {
	f.RLock()
	defer f.RUnlock()
	return f.features[feature]
}

func (f *fakeUnleash) setEnabled(feature string, enabled bool) {
	f.Lock()
	f.features[feature] = enabled
	f.Unlock()
}

var fakeFlags = &fakeUnleash{features: map[string]bool{}}

func toggleFeature(feature string, enabled bool) {
	flags = fakeFlags
	fakeFlags.setEnabled(feature, enabled)
}
