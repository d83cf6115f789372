package services

import (
	"testing"

	"github.com/klubapp/klub-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestEncodeTablePayload(t *testing.T) {
	payload := EncodeTablePayload("rest-123", 5)
	assert.Equal(t, "klub://restaurant/rest-123/table/5", payload)
}

func TestDecodeTablePayload_RoundTrip(t *testing.T) {
	payload := EncodeTablePayload("rest-123", 5)

	ref, err := DecodeTablePayload(payload)

	assert.NoError(t, err)
	assert.Equal(t, "rest-123", ref.RestaurantID)
	assert.Equal(t, 5, ref.TableNumber)
}

func TestDecodeTablePayload_WebForm(t *testing.T) {
	ref, err := DecodeTablePayload("https://klub.app/scan?restaurant=rest-123&table=12")

	assert.NoError(t, err)
	assert.Equal(t, "rest-123", ref.RestaurantID)
	assert.Equal(t, 12, ref.TableNumber)
}

func TestDecodeTablePayload_HTTPForm(t *testing.T) {
	ref, err := DecodeTablePayload("http://localhost:3000/scan?restaurant=rest-9&table=2")

	assert.NoError(t, err)
	assert.Equal(t, "rest-9", ref.RestaurantID)
	assert.Equal(t, 2, ref.TableNumber)
}

func TestDecodeTablePayload_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"not a url", "not a url"},
		{"empty payload", ""},
		{"unknown scheme", "ftp://restaurant/rest-1/table/2"},
		{"wrong path shape", "klub://restaurant/rest-1/seat/2"},
		{"missing table segment", "klub://restaurant/rest-1"},
		{"non-numeric table", "klub://restaurant/rest-1/table/two"},
		{"missing restaurant param", "https://klub.app/scan?table=4"},
		{"missing table param", "https://klub.app/scan?restaurant=rest-1"},
		{"non-numeric table param", "https://klub.app/scan?restaurant=rest-1&table=abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := DecodeTablePayload(tc.payload)

			assert.Nil(t, ref)
			assert.Error(t, err)
			assert.True(t, utils.IsKind(err, utils.KindInvalidPayload))
		})
	}
}

func TestScanURL(t *testing.T) {
	url := ScanURL("http://localhost:3000", "rest-123", 7)
	assert.Equal(t, "http://localhost:3000/scan?restaurant=rest-123&table=7", url)

	// Trailing slash on the base must not produce a double slash
	url = ScanURL("https://klub.app/", "rest-123", 7)
	assert.Equal(t, "https://klub.app/scan?restaurant=rest-123&table=7", url)
}
