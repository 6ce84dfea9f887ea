// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-hash-key"

func executeIntegrity(t *testing.T, body string, signature string) (*httptest.ResponseRecorder, *string) {
	t.Helper()

	utils.InitHasherPool(testHashKey)

	h := &Handler{logger: logger.Nop()}

	var seenBody *string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		s := string(b)
		seenBody = &s
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/gifts", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(integrityHeader, signature)
	}
	rec := httptest.NewRecorder()

	h.integrity(next).ServeHTTP(rec, req)
	return rec, seenBody
}

func TestIntegrity_NoHeaderPassesThrough(t *testing.T) {
	rec, seenBody := executeIntegrity(t, `{"gift_id":10}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seenBody)
	assert.Equal(t, `{"gift_id":10}`, *seenBody)
}

func TestIntegrity_ValidSignature(t *testing.T) {
	body := `{"gifts":[{"person_id":1,"description":"wool socks"}]}`
	signature := utils.HashString(body, testHashKey)

	rec, seenBody := executeIntegrity(t, body, signature)

	assert.Equal(t, http.StatusOK, rec.Code)
	// тело восстановлено после чтения в middleware
	require.NotNil(t, seenBody)
	assert.Equal(t, body, *seenBody)
}

func TestIntegrity_InvalidSignature(t *testing.T) {
	rec, seenBody := executeIntegrity(t, `{"gift_id":10}`, "deadbeef")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, seenBody)
	assert.Contains(t, rec.Body.String(), "Integrity check failed")
}

func TestIntegrity_TamperedBody(t *testing.T) {
	original := `{"gift_id":10,"purchased":true}`
	signature := utils.HashString(original, testHashKey)

	rec, seenBody := executeIntegrity(t, `{"gift_id":10,"purchased":false}`, signature)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, seenBody)
}
