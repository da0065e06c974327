package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name     string
	priority int
	err      error
	trace    *[]string
}

func (m *fakeModule) Name() string  { return m.name }
func (m *fakeModule) Priority() int { return m.priority }
func (m *fakeModule) Init(ctx *ModuleContext) error {
	*m.trace = append(*m.trace, m.name)
	return m.err
}

func withModules(t *testing.T, modules ...Module) {
	saved := moduleRegistry
	moduleRegistry = make(map[string]Module)
	for _, m := range modules {
		Register(m)
	}
	t.Cleanup(func() { moduleRegistry = saved })
}

func TestInitModules_Order(t *testing.T) {
	var trace []string
	withModules(t,
		&fakeModule{name: "topic", priority: 10, trace: &trace},
		&fakeModule{name: "user", priority: 1, trace: &trace},
		&fakeModule{name: "settings", priority: 3, trace: &trace},
		&fakeModule{name: "node", priority: 3, trace: &trace},
	)

	require.NoError(t, InitModules(&ModuleContext{}))
	assert.Equal(t, []string{"user", "node", "settings", "topic"}, trace)
}

func TestInitModules_StopsOnError(t *testing.T) {
	var trace []string
	withModules(t,
		&fakeModule{name: "user", priority: 1, trace: &trace, err: errors.New("boom")},
		&fakeModule{name: "topic", priority: 10, trace: &trace},
	)

	err := InitModules(&ModuleContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init module user")
	assert.Equal(t, []string{"user"}, trace)
}

func TestModuleContext_CloseReverseOrder(t *testing.T) {
	var trace []string
	ctx := &ModuleContext{}
	ctx.OnClose(func() { trace = append(trace, "first") })
	ctx.OnClose(func() { trace = append(trace, "second") })

	ctx.Close()
	assert.Equal(t, []string{"second", "first"}, trace)
	assert.Empty(t, ctx.Closers)
}
