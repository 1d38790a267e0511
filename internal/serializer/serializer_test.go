package serializer_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/serializer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCompany(t *testing.T) {
	t.Run("verified company carries the derived flag", func(t *testing.T) {
		now := time.Now().UTC()
		company := &model.Company{
			ID:                 uuid.New(),
			Name:               "Harbor Tours",
			VerificationStatus: model.VerificationVerified,
			VerifiedAt:         &now,
		}

		var buf bytes.Buffer
		assert.NoError(t, serializer.Encode(company, &buf))

		var payload map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
		assert.Equal(t, true, payload["is_verified"])
		assert.Equal(t, "verified", payload["verification_status"])
	})

	t.Run("pending company is not verified", func(t *testing.T) {
		company := &model.Company{
			ID:                 uuid.New(),
			Name:               "Harbor Tours",
			VerificationStatus: model.VerificationPending,
		}

		var buf bytes.Buffer
		assert.NoError(t, serializer.Encode(company, &buf))

		var payload map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
		assert.Equal(t, false, payload["is_verified"])
	})

	t.Run("unregistered models are an error", func(t *testing.T) {
		type unregistered struct{}

		var buf bytes.Buffer
		err := serializer.Encode(&unregistered{}, &buf)
		assert.ErrorContains(t, err, "no serializer found")
	})
}

func TestDecodeCompany(t *testing.T) {
	input := []byte(`{"name":"Harbor Tours","verification_status":"pending","is_verified":true}`)

	var company model.Company
	assert.NoError(t, serializer.Decode(&company, input))
	assert.Equal(t, "Harbor Tours", company.Name)

	// The stored enum wins; a forged flag in the payload changes nothing.
	assert.Equal(t, model.VerificationPending, company.VerificationStatus)
	assert.False(t, company.Verified())
}
