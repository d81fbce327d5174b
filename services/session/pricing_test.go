package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shutterdesk/models"
)

func TestComputeTotal(t *testing.T) {
	packages, addOns := testCatalog()

	t.Run("package plus add-on", func(t *testing.T) {
		sess := models.Session{ID: "s1", PackageID: "basic", AddOnIDs: models.IDList{"3"}}
		total, err := ComputeTotal(sess, packages, addOns)
		require.NoError(t, err)
		assert.Equal(t, 375.0, total)
	})

	t.Run("same total regardless of reference wire shape", func(t *testing.T) {
		for name, payload := range map[string]string{
			"list":        `{"id":"s1","package_id":"basic","addon_ids":["3"]}`,
			"comma string": `{"id":"s1","package_id":"basic","addon_ids":"3"}`,
			"numeric id":  `{"id":"s1","package_id":"basic","addon_ids":[3]}`,
		} {
			t.Run(name, func(t *testing.T) {
				var sess models.Session
				require.NoError(t, json.Unmarshal([]byte(payload), &sess))
				total, err := ComputeTotal(sess, packages, addOns)
				require.NoError(t, err)
				assert.Equal(t, 375.0, total)
			})
		}
	})

	t.Run("no package and no add-ons yields no price", func(t *testing.T) {
		_, err := ComputeTotal(models.Session{ID: "s1"}, packages, addOns)
		assert.ErrorIs(t, err, ErrNoPriceAvailable)
	})

	t.Run("dangling references yield no price, not zero", func(t *testing.T) {
		sess := models.Session{ID: "s1", PackageID: "deleted", AddOnIDs: models.IDList{"gone"}}
		_, err := ComputeTotal(sess, packages, addOns)
		assert.ErrorIs(t, err, ErrNoPriceAvailable)
	})

	t.Run("zero-priced catalog entries yield no price", func(t *testing.T) {
		sess := models.Session{ID: "s1", PackageID: "free"}
		_, err := ComputeTotal(sess, []models.Package{{ID: "free", Name: "Free", Price: 0}}, nil)
		assert.ErrorIs(t, err, ErrNoPriceAvailable)
	})

	t.Run("add-ons alone make a price", func(t *testing.T) {
		sess := models.Session{ID: "s1", AddOnIDs: models.IDList{"rush", "album"}}
		total, err := ComputeTotal(sess, packages, addOns)
		require.NoError(t, err)
		assert.Equal(t, 550.0, total)
	})
}
