package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "7", CanonicalID("7"))
	assert.Equal(t, "7", CanonicalID(" 7 "))
	assert.Equal(t, "7", CanonicalID("7.0"))
	assert.Equal(t, "addon-rush", CanonicalID("addon-rush"))
	assert.Equal(t, "", CanonicalID("   "))
}

func TestIDListUnmarshalJSON(t *testing.T) {
	t.Run("array of strings", func(t *testing.T) {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(`["a","b","c"]`), &l))
		assert.Equal(t, IDList{"a", "b", "c"}, l)
	})

	t.Run("comma-delimited string", func(t *testing.T) {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(`"a, b,,c"`), &l))
		assert.Equal(t, IDList{"a", "b", "c"}, l)
	})

	t.Run("mixed numeric and string identifiers", func(t *testing.T) {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(`[7, "8", "addon-album"]`), &l))
		assert.Equal(t, IDList{"7", "8", "addon-album"}, l)
	})

	t.Run("null", func(t *testing.T) {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(`null`), &l))
		assert.Empty(t, l)
	})

	t.Run("single number", func(t *testing.T) {
		var l IDList
		require.NoError(t, json.Unmarshal([]byte(`7`), &l))
		assert.Equal(t, IDList{"7"}, l)
	})

	t.Run("inside a session document", func(t *testing.T) {
		var sess Session
		payload := `{"id":"s1","client_name":"Jo","addon_ids":"3,4"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &sess))
		assert.Equal(t, IDList{"3", "4"}, sess.AddOnIDs)
	})
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`300`), &m))
		assert.Equal(t, 300.0, m.Float64())
	})

	t.Run("numeric string", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`"75.50"`), &m))
		assert.Equal(t, 75.50, m.Float64())
	})

	t.Run("garbage decodes to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`"call us"`), &m))
		assert.Equal(t, 0.0, m.Float64())
	})

	t.Run("null decodes to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`null`), &m))
		assert.Equal(t, 0.0, m.Float64())
	})
}

func TestSessionStatusValid(t *testing.T) {
	for _, status := range []SessionStatus{StatusPending, StatusQuoted, StatusBooked, StatusInvoiced} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, SessionStatus("cancelled").Valid())
	assert.False(t, SessionStatus("").Valid())
}

func TestDocumentKind(t *testing.T) {
	assert.Equal(t, "Quote", DocumentQuote.Title())
	assert.Equal(t, "Order Confirmation", DocumentOrder.Title())
	assert.Equal(t, "Invoice", DocumentInvoice.Title())
	assert.False(t, DocumentKind("receipt").Valid())
}
