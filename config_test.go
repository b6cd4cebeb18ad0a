package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesNewDefaults(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, defaultDX, c.DX)
	assert.Equal(t, defaultDY, c.DY)
	assert.Equal(t, defaultCardinalCost, c.MoveCost[DirN])
	assert.Equal(t, defaultDiagonalCost, c.MoveCost[DirNE])
	assert.Equal(t, "cardinal", c.MovementMode)
	assert.Equal(t, "manhattan", c.Heuristic)
}

func TestPresetsAreRegistered(t *testing.T) {
	_, ok := Presets["default"]
	require.True(t, ok)
	_, ok = Presets["smooth-8way"]
	require.True(t, ok)
	_, ok = Presets["cheap-cardinal"]
	require.True(t, ok)

	assert.Equal(t, "eight_way", Presets["smooth-8way"].MovementMode)
	assert.Equal(t, "octile", Presets["smooth-8way"].Heuristic)
}

func TestLoadConfigFromYAML(t *testing.T) {
	data := []byte(`
movement_mode: eight_way
heuristic: octile
steering_penalty: 3
heuristic_factor: 9
max_cost: 1000
timeout_usecs: 50000
dx: [0, 1, 1, 1, 0, -1, -1, -1]
dy: [-1, -1, 0, 1, 1, 1, 0, -1]
move_cost: [10, 14, 10, 14, 10, 14, 10, 14]
`)
	c, err := LoadConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "eight_way", c.MovementMode)
	assert.Equal(t, "octile", c.Heuristic)
	assert.Equal(t, uint32(3), c.SteeringPenalty)
	assert.Equal(t, uint32(1000), c.MaxCost)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig([]byte("not: [valid yaml"))
	assert.Error(t, err)
}

func TestConfigOptionsAppliesToEngine(t *testing.T) {
	c := Presets["smooth-8way"]
	e, err := New(5, 5, openField, c.Options()...)
	require.NoError(t, err)
	assert.Equal(t, EightWay, e.movementMode)
	assert.Equal(t, uint32(2), e.steeringPenalty)

	status, err := e.Run(0, 0, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, StatusFound, status)
}

func TestConfigOptionsUnknownNamesFallBack(t *testing.T) {
	c := Config{MovementMode: "sideways", Heuristic: "made-up"}
	e, err := New(5, 5, openField, c.Options()...)
	require.NoError(t, err)
	assert.Equal(t, Cardinal, e.movementMode)
}
