package auth

import (
	"sync"
)

// SessionStore 用户名到当前会话令牌的映射，每个用户名同时只保留一个会话。
// 内存实现随进程重启丢失；需要持久化时可提供其它实现
type SessionStore interface {
	Put(username, token string)
	Get(username string) (string, bool)
	Clear(username string)
}

type MemorySessionStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		tokens: make(map[string]string),
	}
}

// Put 记录会话令牌，重复登录会覆盖旧令牌
func (s *MemorySessionStore) Put(username, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[username] = token
}

func (s *MemorySessionStore) Get(username string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[username]
	return token, ok
}

func (s *MemorySessionStore) Clear(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, username)
}
