package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStamp(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := &DecisionRecord{GameUid: "g", Move: "(0, 1, H)"}
	r.Stamp(created)
	require.False(t, r.ID.IsZero())
	require.Equal(t, created, r.CreateAt)
	require.Equal(t, created, r.UpdateAt)

	id := r.ID
	updated := created.Add(time.Minute)
	r.Stamp(updated)
	require.Equal(t, id, r.ID)
	require.Equal(t, created, r.CreateAt)
	require.Equal(t, updated, r.UpdateAt)
}
