// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

/*
Package flash implements one-shot user-facing messages for server-rendered pages.

A message queued during one request ("Venue X was successfully listed!") is
shown exactly once on the next page the same browser renders, then discarded.

Architecture:

  - Identity: An anonymous session cookie (UUID v7) identifies the browser.
  - Storage: Messages live in a Redis list under a TTL, so restarts and
    multi-instance deployments do not lose or duplicate them.
  - Delivery: The render package pops pending messages into every page.

Failures here are never fatal to a request: a broken Redis connection costs
the user a notification, not the page.
*/
package flash

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vuphamle/playbill/internal/platform/constants"
	"github.com/vuphamle/playbill/internal/platform/ctxutil"
)

// Store queues and drains per-session flash messages in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed flash message store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Add queues a message for the requesting browser's next page view.
//
// If the browser has no session cookie yet, one is issued on the response.
// Storage errors are logged and swallowed.
func (store *Store) Add(writer http.ResponseWriter, request *http.Request, message string) {
	ctx := request.Context()
	token := store.sessionToken(writer, request)

	key := constants.RedisPrefixFlash + token

	pipe := store.client.Pipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, constants.FlashTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		ctxutil.GetLogger(ctx).Warn("flash_store_unavailable", slog.Any("error", err))
	}
}

// Pop drains and returns all pending messages for the requesting browser.
//
// It returns nil when there is no session, no pending message, or Redis is
// unreachable (logged, not surfaced).
func (store *Store) Pop(request *http.Request) []string {
	ctx := request.Context()

	cookie, err := request.Cookie(constants.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	key := constants.RedisPrefixFlash + cookie.Value

	pipe := store.client.TxPipeline()
	listCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		ctxutil.GetLogger(ctx).Warn("flash_read_unavailable", slog.Any("error", err))
		return nil
	}

	messages := listCmd.Val()
	if len(messages) == 0 {
		return nil
	}
	return messages
}

// sessionToken returns the browser's session token, issuing a fresh cookie
// when none exists.
func (store *Store) sessionToken(writer http.ResponseWriter, request *http.Request) string {
	if cookie, err := request.Cookie(constants.FlashCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := newToken()
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

// newToken generates a session token, preferring time-sortable UUID v7.
func newToken() string {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return uuidV7.String()
}
