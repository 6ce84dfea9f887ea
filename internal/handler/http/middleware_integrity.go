package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/christmas-gifter/internal/utils"
)

// integrityHeader carries the hex-encoded HMAC-SHA256 signature of the raw
// request body. Clients that share the server's hash key set it on every
// mutating request.
const integrityHeader = "HashSHA256"

// integrity verifies the body signature of mutating requests.
//
// The check is opt-in per request: when the HashSHA256 header is absent the
// request passes through untouched, so clients without a configured hash key
// keep working. When the header is present the raw body is hashed with the
// pooled HMAC (see utils.InitHasherPool) and the request is rejected with
// HTTP 400 on mismatch.
func (h *Handler) integrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(integrityHeader)
		if signature == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.integrity").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.integrity").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if hashedBody != signature {
			h.logger.Error().Str("func", "*Handler.integrity").
				Str("hash from request", signature).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.integrity").
			Str("hash from request", signature).
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
