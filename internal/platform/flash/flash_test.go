// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuphamle/playbill/internal/platform/constants"
	"github.com/vuphamle/playbill/internal/platform/flash"
)

// unreachableClient returns a client that fails fast; flash must degrade
// gracefully when Redis is down.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

/*
TestAdd_IssuesSessionCookie verifies that the first Add sets the anonymous
session cookie on the response.
*/
func TestAdd_IssuesSessionCookie(t *testing.T) {
	store := flash.NewStore(unreachableClient())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/venues/create", nil)

	store.Add(recorder, request, "Venue The Fillmore was successfully listed!")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.FlashCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

/*
TestAdd_ReusesExistingCookie verifies that a browser with a session cookie is
not issued a second one.
*/
func TestAdd_ReusesExistingCookie(t *testing.T) {
	store := flash.NewStore(unreachableClient())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/venues/create", nil)
	request.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "existing-session"})

	store.Add(recorder, request, "hello")

	assert.Empty(t, recorder.Result().Cookies())
}

/*
TestPop_NoSession verifies that Pop is a no-op for browsers without a session.
*/
func TestPop_NoSession(t *testing.T) {
	store := flash.NewStore(unreachableClient())

	request := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, store.Pop(request))
}
