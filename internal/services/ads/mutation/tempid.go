package mutation

import (
	"fmt"
	"sync"
)

// TempIDAllocator hands out negative temporary resource IDs for resources
// created inside one mutate batch. Temporary IDs let later operations in the
// same request reference assets that do not exist yet; they must be unique
// within the request, which the allocator guarantees under concurrent use.
type TempIDAllocator struct {
	mu   sync.Mutex
	next int64
}

// NewTempIDAllocator starts allocation at -1.
func NewTempIDAllocator() *TempIDAllocator {
	return &TempIDAllocator{next: -1}
}

// Next returns the next unused temporary ID.
func (a *TempIDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next--
	return id
}

// AssetResourceName allocates a temporary asset resource name.
func (a *TempIDAllocator) AssetResourceName(customerID string) string {
	return fmt.Sprintf("customers/%s/assets/%d", customerID, a.Next())
}
