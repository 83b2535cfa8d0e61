package osmtrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "Walk", Walk.String())
	assert.Equal(t, "Bus", Bus.String())
	assert.Equal(t, "undefined", ModeUndefined.String())
	assert.Equal(t, "undefined", TransportationMode(42).String())

	assert.Equal(t, "distance", GRAPH_DISTANCE.String())
	assert.Equal(t, "bike", GRAPH_BIKE.String())
	assert.Equal(t, "undefined", GraphMode(0).String())
	assert.Equal(t, "undefined", GraphMode(42).String())
}
