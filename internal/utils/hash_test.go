// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/christmas-gifter/models"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-secret-key"

func TestHash_WithRealPayload(t *testing.T) {
	InitHasherPool(testHashKey)

	payload := models.UpsertGiftRequest{
		PersonID:    42,
		Description: "wool socks",
	}

	// Сериализуем Payload в JSON (как это делает middleware)
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	got := hex.EncodeToString(Hash(payloadBytes))

	// Эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(payloadBytes)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

// TestHash_DifferentPayloads проверяет что разные Payload дают разные хеши
func TestHash_DifferentPayloads(t *testing.T) {
	InitHasherPool(testHashKey)

	payload1 := models.UpsertGiftRequest{
		PersonID:    1,
		Description: "chess board",
	}

	payload2 := models.UpsertGiftRequest{
		PersonID:    2,
		Description: "model train",
	}

	bytes1, _ := json.Marshal(payload1)
	bytes2, _ := json.Marshal(payload2)

	hash1 := hex.EncodeToString(Hash(bytes1))
	hash2 := hex.EncodeToString(Hash(bytes2))

	if hash1 == hash2 {
		t.Error("different payloads must produce different hashes")
	}
}

// TestHash_SamePayload_Deterministic проверяет что одинаковый Payload всегда дает одинаковый хеш
func TestHash_SamePayload_Deterministic(t *testing.T) {
	InitHasherPool(testHashKey)

	payload := models.CreateGiftsRequest{
		Gifts: []models.GiftInput{
			{PersonID: 7, Description: "sled"},
			{PersonID: 7, Description: "thermos"},
		},
	}

	payloadBytes, _ := json.Marshal(payload)

	hash1 := hex.EncodeToString(Hash(payloadBytes))
	hash2 := hex.EncodeToString(Hash(payloadBytes))

	if hash1 != hash2 {
		t.Errorf("same payload must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

// TestHash_DifferentKeys проверяет что разные ключи дают разные хеши для одного Payload
func TestHash_DifferentKeys(t *testing.T) {
	payload := models.AppendPersonRequest{Name: "Grandma"}
	payloadBytes, _ := json.Marshal(payload)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(payloadBytes))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(payloadBytes))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

// TestHash_RawBodyVariants проверяет что хеш считается от сырых байт тела запроса:
// два JSON с одинаковыми значениями, но разным порядком полей, дают разные хеши.
// Клиент обязан подписывать ровно те байты, которые отправляет.
func TestHash_RawBodyVariants(t *testing.T) {
	InitHasherPool(testHashKey)

	json1 := []byte(`{"person_id":42,"description":"wool socks"}`)
	json2 := []byte(`{"description":"wool socks","person_id":42}`)

	hash1 := hex.EncodeToString(Hash(json1))
	hash2 := hex.EncodeToString(Hash(json2))

	if hash1 == hash2 {
		t.Error("different raw bodies must produce different hashes")
	}
}
