package collection

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Put(fmt.Sprintf("k%d", i), i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, m.Len())

	value, ok := m.Get("k3")
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	m.Delete("k3")
	m.Delete("missing")
	_, ok = m.Get("k3")
	assert.False(t, ok)

	visited := 0
	m.Range(func(_ string, _ int) bool {
		visited++
		return visited < 5
	})
	assert.Equal(t, 5, visited)
}
