package testing

import (
	"fmt"
	"sync"
)

// FailingAllocator hands out memory until it has been called FailOn times,
// then fails every call after that. A negative FailOn never fails.
//
// Running an operation once with FailOn = 0, 1, 2, ... until it succeeds hits
// every allocation the operation makes.
type FailingAllocator struct {
	FailOn int

	lock  sync.Mutex
	calls int
}

// Alloc implements pinto.AllocFunc.
func (a *FailingAllocator) Alloc(size int) ([]byte, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	call := a.calls
	a.calls++
	if a.FailOn >= 0 && call >= a.FailOn {
		return nil, fmt.Errorf("refusing allocation #%d of %d bytes", call, size)
	}
	return make([]byte, size), nil
}

// Calls returns how many times Alloc has been called.
func (a *FailingAllocator) Calls() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.calls
}

// DirtyAlloc returns memory filled with garbage, to make sure nothing relies
// on allocations being zeroed.
func DirtyAlloc(size int) ([]byte, error) {
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xA5
	}
	return data, nil
}
