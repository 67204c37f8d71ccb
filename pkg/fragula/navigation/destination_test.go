package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsDuplicateRoute(t *testing.T) {
	_, err := NewGraphBuilder().
		Swipeable("a", nil).
		Swipeable("a", nil).
		Build()
	assert.ErrorIs(t, err, ErrDuplicateRoute)
}

func TestBuildRejectsEmptyRoute(t *testing.T) {
	_, err := NewGraphBuilder().Swipeable("", nil).Build()
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestResolve(t *testing.T) {
	g, err := NewGraphBuilder().
		Swipeable("user/{id}", nil).
		Swipeable("user/me", nil).
		Swipeable("user/{id}/posts/{post}", nil).
		Swipeable("settings", nil).
		Build()
	require.NoError(t, err)

	tests := []struct {
		route   string
		pattern string
		args    Arguments
	}{
		{"settings", "settings", nil},
		{"user/me", "user/me", nil},
		{"user/7", "user/{id}", Arguments{"id": "7"}},
		{"user/7/posts/99", "user/{id}/posts/{post}", Arguments{"id": "7", "post": "99"}},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			d, args, err := g.Resolve(tt.route)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, d.Route())
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestResolveFailures(t *testing.T) {
	g, err := NewGraphBuilder().Swipeable("user/{id}", nil).Build()
	require.NoError(t, err)

	for _, route := range []string{"user", "user/", "user/1/2", "other/1", ""} {
		_, _, err := g.Resolve(route)
		assert.ErrorIs(t, err, ErrUnknownRoute, route)
	}
}

func TestDestinationOptions(t *testing.T) {
	g, err := NewGraphBuilder().
		Swipeable("chat/{id}", nil,
			WithDeepLink("app://chat/{id}"),
			WithArgument("unread", Argument{Default: 0, Nullable: true}),
			WithClassName("Chat"),
			WithTitle("chat_title")).
		Build()
	require.NoError(t, err)

	d, ok := g.Destination("chat/{id}")
	require.True(t, ok)
	assert.Equal(t, []string{"app://chat/{id}"}, d.DeepLinks())
	assert.Equal(t, "Chat", d.ClassName())
	assert.Equal(t, "chat_title", d.TitleID())

	arg, ok := d.Argument("unread")
	assert.True(t, ok)
	assert.True(t, arg.Nullable)

	assert.Len(t, g.Destinations(), 1)
}

func TestEntryContentWithoutFunc(t *testing.T) {
	g, err := NewGraphBuilder().Swipeable("a", nil).Build()
	require.NoError(t, err)

	n, err := New(g, "a")
	require.NoError(t, err)
	assert.Nil(t, n.Current().Content())
}
