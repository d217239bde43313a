package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwitch(t *testing.T) {
	for _, s := range []string{"ON", "on", "1", "true"} {
		require.Equal(t, On, NewSwitch(s), s)
	}
	for _, s := range []string{"OFF", "off", "0", "", "maybe"} {
		require.Equal(t, Off, NewSwitch(s), s)
	}
	require.Equal(t, "ON", On.String())
}

func TestBar(t *testing.T) {
	b := NewBar(3, "searching")
	b.Depth(1, 3)
	b.Depth(3, 3)
	b.Close()
}
