package memory

import (
	"time"

	"bytemart-search-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the live session for sessionID, creating a fresh one
// with default blend weights when none exists. created reports which case
// happened so the caller can force a reset turn on a brand-new session.
func (r *SessionRepository) GetOrCreate(sessionID string) (sess *store.Session, created bool) {
	if existing, found := r.Get(sessionID); found {
		// Refresh the expiration so active conversations never vanish
		// mid-turn.
		r.Save(existing)
		return existing, false
	}
	sess = &store.Session{
		ID:         sessionID,
		ImgWeight:  store.DefaultImgWeight,
		TextWeight: store.DefaultTextWeight,
	}
	r.Save(sess)
	return sess, true
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
