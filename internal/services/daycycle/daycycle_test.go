package daycycle_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/services/daycycle"
)

func TestPhaseAt(t *testing.T) {
	testCases := []struct {
		hour int
		want daycycle.Phase
	}{
		{0, daycycle.Night},
		{5, daycycle.Night},
		{6, daycycle.Morning},
		{11, daycycle.Morning},
		{12, daycycle.Afternoon},
		{17, daycycle.Afternoon},
		{18, daycycle.Evening},
		{21, daycycle.Evening},
		{22, daycycle.Night},
		{23, daycycle.Night},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, daycycle.PhaseAt(tc.hour), "hour %d", tc.hour)
	}
}

func TestCycle_PublishesChanges(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus()

	var hours []int
	var phases []string
	notify.Subscribe(bus, notify.TopicHourChanged, func(_ context.Context, p notify.Payload) error {
		hours = append(hours, p.Int("hour"))
		return nil
	})
	notify.Subscribe(bus, notify.TopicPhaseChanged, func(_ context.Context, p notify.Payload) error {
		phases = append(phases, p.String("phase"))
		return nil
	})

	c, err := daycycle.New(&daycycle.Config{EventBus: bus, StartingHour: 11.5})
	require.NoError(t, err)
	assert.Equal(t, "11:30", c.String())
	assert.Equal(t, daycycle.Morning, c.Phase())

	// 60x: 29 real seconds is 29 game minutes
	require.NoError(t, c.Tick(ctx, 29))
	assert.Empty(t, hours)

	require.NoError(t, c.Tick(ctx, 1))
	assert.Equal(t, []int{12}, hours)
	assert.Equal(t, []string{"afternoon"}, phases)
	assert.Equal(t, 12, c.Hour())
}

func TestCycle_WrapsDay(t *testing.T) {
	c, err := daycycle.New(&daycycle.Config{StartingHour: 23, TimeMultiplier: 3600})
	require.NoError(t, err)

	require.NoError(t, c.Tick(context.Background(), 2))
	assert.Equal(t, 1, c.Hour())
	assert.Equal(t, 2, c.Day())
	assert.Equal(t, daycycle.Night, c.Phase())
}

func TestCycle_ConfigValidation(t *testing.T) {
	_, err := daycycle.New(&daycycle.Config{StartingHour: 25})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
