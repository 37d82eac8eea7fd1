package utils

import (
	"strings"
	"sync"
)

var storeInstance *stringStoreImpl
var stringStoreInitializer sync.Once

// StringStore interns the tag and word vocabulary. All lookups lowercase
// their input, which gives the whole service its case-insensitive token
// convention in one place.
type StringStore interface {
	Intern(s string) string
	InternAll(ss []string) []string

	// After training completes the store is locked so open-vocabulary decode
	// input cannot grow it without bound.
	Lock()
	IsLocked() bool
}

type stringStoreImpl struct {
	store    sync.Map //map[string]string
	isLocked bool
}

func (stringStore *stringStoreImpl) Intern(s string) string {
	lowerS := strings.ToLower(s)

	if !stringStore.isLocked {
		actual, _ := stringStore.store.LoadOrStore(lowerS, lowerS)
		return actual.(string)
	}

	actual, ok := stringStore.store.Load(lowerS)
	if !ok {
		return lowerS
	}

	return actual.(string)
}

func (stringStore *stringStoreImpl) InternAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = stringStore.Intern(s)
	}
	return out
}

func (stringStore *stringStoreImpl) Lock() {
	stringStore.isLocked = true
}

func (stringStore *stringStoreImpl) IsLocked() bool {
	return stringStore.isLocked
}

func GlobalStringStore() StringStore {
	stringStoreInitializer.Do(func() {
		storeInstance = new(stringStoreImpl)
		storeInstance.isLocked = false
	})

	return storeInstance
}
