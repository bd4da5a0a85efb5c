package httpx

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONAllowsUnknownFields(t *testing.T) {
	var req struct {
		Message string `json:"message"`
	}
	err := DecodeJSON(strings.NewReader(`{"message":"hi","extra":true}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "hi", req.Message)
}

func TestDecodeJSONRejectsTrailingObject(t *testing.T) {
	var req map[string]interface{}
	err := DecodeJSON(strings.NewReader(`{"a":1}{"b":2}`), &req)
	assert.ErrorIs(t, err, ErrMultipleObjects)
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"4"}}, 20, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 4, offset)

	_, _, err = ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100)
	assert.Error(t, err)

	_, _, err = ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100)
	assert.Error(t, err)
}

func TestParseOptionalFloat(t *testing.T) {
	v, err := ParseOptionalFloat(url.Values{}, "minRate")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalFloat(url.Values{"minRate": {" 250.5 "}}, "minRate")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 250.5, *v)

	_, err = ParseOptionalFloat(url.Values{"minRate": {"cheap"}}, "minRate")
	assert.Error(t, err)
}

func TestParseOptionalFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Infinity", "1e400"} {
		v, err := ParseOptionalFloat(url.Values{"minRate": {raw}}, "minRate")
		assert.Error(t, err, raw)
		assert.Nil(t, v, raw)
	}
}

func TestFilterValueTreatsAllAsEmpty(t *testing.T) {
	assert.Equal(t, "", FilterValue(url.Values{"caseType": {"all"}}, "caseType"))
	assert.Equal(t, "", FilterValue(url.Values{"caseType": {"ALL"}}, "caseType"))
	assert.Equal(t, "Family Law", FilterValue(url.Values{"caseType": {"Family Law"}}, "caseType"))
}
