package luminahr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySession(t *testing.T) {
	session := NewMemorySession()
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())

	user := &User{ID: "u1", Email: "john@co.com", Role: RoleEmployee}
	session.Set("tok-1", user)
	assert.Equal(t, "tok-1", session.Token())
	assert.Equal(t, user, session.User())

	session.Clear()
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
}

func TestMemorySession_ConcurrentAccess(t *testing.T) {
	session := NewMemorySession()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			session.Set("tok", &User{ID: "u1"})
		}()
		go func() {
			defer wg.Done()
			_ = session.Token()
			_ = session.User()
		}()
	}
	wg.Wait()
}
