// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookieName holds one-shot notices across a redirect
const FlashCookieName = "smokeroom_flash"

// AddFlash queues message for the next view that calls PopFlashes.
// Notices still pending on r are kept.
func AddFlash(w http.ResponseWriter, r *http.Request, message string) {
	messages := append(readFlashes(r), message)

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes returns the pending notices and clears them.
// The result is never nil so views render it as [].
func PopFlashes(w http.ResponseWriter, r *http.Request) []string {
	messages := readFlashes(r)
	if _, err := r.Cookie(FlashCookieName); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     FlashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return messages
}

func readFlashes(r *http.Request) []string {
	messages := []string{}

	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return messages
	}

	payload, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return messages
	}

	var decoded []string
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return messages
	}
	return append(messages, decoded...)
}
