// Package badgerkv implements the kv stores on an embedded badger database,
// relying on badger entry TTLs for expiry.
package badgerkv

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/kv"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	verificationPrefix = "otp:"
	chatPrefix         = "chat:"

	gcInterval     = 10 * time.Minute
	gcDiscardRatio = 0.5

	// conflictRetries bounds the retries of a transaction that lost a race
	// with a concurrent writer of the same key.
	conflictRetries = 10
)

var (
	_ kv.OTPStore  = (*Store)(nil)
	_ kv.ChatStore = (*Store)(nil)
)

// Options configures the badger database.
type Options struct {
	// Dir holds the database files. Empty runs fully in memory.
	Dir string
}

// Store is a badger backed kv.OTPStore and kv.ChatStore.
type Store struct {
	db       *badger.DB
	inMemory bool
}

// Open opens (or creates) the badger database.
func Open(ctx context.Context, opts Options) (*Store, error) {
	bopts := badger.DefaultOptions(opts.Dir).
		WithLogger(&badgerLogger{l: logger.Get(ctx).Named("badger").Sugar()}).
		WithLoggingLevel(badger.WARNING)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("could not open badger: %w", err)
	}

	return &Store{db: db, inMemory: opts.Dir == ""}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Serve runs value log garbage collection until ctx is done. It makes the
// store usable as a supervised service.
func (s *Store) Serve(ctx context.Context) error {
	if s.inMemory {
		<-ctx.Done()

		return nil
	}

	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for {
				err := s.db.RunValueLogGC(gcDiscardRatio)
				if errors.Is(err, badger.ErrNoRewrite) {
					break
				}
				if err != nil {
					logger.Warn(ctx, "badger value log gc failed", zap.Error(err))

					break
				}
			}
		}
	}
}

func (s *Store) String() string { return "badger-kv" }

func (s *Store) set(key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), data).WithTTL(ttl))
	})
}

// get decodes the value under key into dst and reports whether it was found.
func (s *Store) get(key string, dst any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read %s: %w", key, err)
	}

	return true, nil
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func verificationKey(userID domain.UserID, method domain.ContactMethod) string {
	return verificationPrefix + userID.String() + ":" + string(method)
}

func (s *Store) SaveVerification(_ context.Context, v domain.Verification, ttl time.Duration) error {
	return s.set(verificationKey(v.UserID, v.Method), v, ttl)
}

func (s *Store) Verification(_ context.Context,
	userID domain.UserID,
	method domain.ContactMethod) (*domain.Verification, error) {
	var v domain.Verification
	found, err := s.get(verificationKey(userID, method), &v)
	if err != nil || !found {
		return nil, err
	}

	return &v, nil
}

func (s *Store) ConsumeAttempt(_ context.Context,
	userID domain.UserID,
	method domain.ContactMethod,
	maxAttempts int) (*domain.Verification, error) {
	key := []byte(verificationKey(userID, method))
	for range conflictRetries {
		v, err := s.consumeAttempt(key, maxAttempts)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil && !errors.Is(err, kv.ErrAttemptsExhausted) {
			return nil, fmt.Errorf("could not consume attempt: %w", err)
		}

		return v, err
	}

	return nil, serrors.With(serrors.ErrRateLimited, "too many concurrent attempts, try again")
}

func (s *Store) consumeAttempt(key []byte, maxAttempts int) (*domain.Verification, error) {
	var (
		v         *domain.Verification
		exhausted bool
	)
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var cur domain.Verification
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &cur) }); err != nil {
			return err
		}
		if cur.Attempts >= maxAttempts {
			exhausted = true

			return txn.Delete(key)
		}

		cur.Attempts++
		data, err := json.Marshal(cur)
		if err != nil {
			return err
		}
		// keep the expiry of the original challenge
		e := badger.NewEntry(key, data)
		e.ExpiresAt = item.ExpiresAt()
		if err := txn.SetEntry(e); err != nil {
			return err
		}
		v = &cur

		return nil
	})
	if err != nil {
		return nil, err
	}
	if exhausted {
		return nil, kv.ErrAttemptsExhausted
	}

	return v, nil
}

func (s *Store) DeleteVerification(_ context.Context, userID domain.UserID, method domain.ContactMethod) error {
	return s.delete(verificationKey(userID, method))
}

func (s *Store) ChatHistory(_ context.Context, userID domain.UserID) ([]domain.ChatMessage, error) {
	var history []domain.ChatMessage
	if _, err := s.get(chatPrefix+userID.String(), &history); err != nil {
		return nil, err
	}

	return history, nil
}

func (s *Store) SaveChatHistory(_ context.Context,
	userID domain.UserID,
	history []domain.ChatMessage,
	ttl time.Duration) error {
	return s.set(chatPrefix+userID.String(), history, ttl)
}

func (s *Store) DeleteChatHistory(_ context.Context, userID domain.UserID) error {
	return s.delete(chatPrefix + userID.String())
}

// badgerLogger adapts a zap sugared logger to badger.Logger.
type badgerLogger struct {
	l *zap.SugaredLogger
}

func (b *badgerLogger) Errorf(f string, v ...interface{})   { b.l.Errorf(f, v...) }
func (b *badgerLogger) Warningf(f string, v ...interface{}) { b.l.Warnf(f, v...) }
func (b *badgerLogger) Infof(f string, v ...interface{})    { b.l.Infof(f, v...) }
func (b *badgerLogger) Debugf(f string, v ...interface{})   { b.l.Debugf(f, v...) }
