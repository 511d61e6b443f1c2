package mecanum

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/sim/visualization/see"
)

func TestSeeReportsBotAndTargets(t *testing.T) {
	e := env.NewConfig().NewLocalEnv()
	conf := NewConfig()
	conf.Targets = 2
	bot := conf.NewController(e)

	var out bytes.Buffer
	vis := see.NewConfig().NewAdapter()
	vis.Writer, vis.Mapper = &out, bot
	vis.Subscribe(bot)

	loop := fx.NewLoop()
	loop.Add(e, bot, vis)
	loop.Step(context.Background())

	var reported []see.Message
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &reported))
	assert.Equal(t, see.ActionReset, reported[0].Action)
	types := make(map[string]int)
	for _, msg := range reported[1:] {
		types[msg.Object[see.PropType].(string)]++
	}
	assert.Equal(t, map[string]int{"corner": 4, "image": 1, "circle": 2}, types)

	out.Reset()
	loop.Step(context.Background())
	assert.Empty(t, out.String(), "nothing changed")
}
