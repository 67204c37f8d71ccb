// Package navigation owns the back-stack behind a swipe-back navigation host.
//
// Destinations are registered once through a GraphBuilder. Each destination
// binds a route pattern to the function that produces its content, so content
// is resolved by a route lookup rather than by type. The Navigator pushes and
// pops Entries and publishes an immutable Snapshot after every mutation.
//
// # Basic Usage
//
//	graph, err := navigation.NewGraphBuilder().
//	    Swipeable("chats", func(e *navigation.Entry) any { return chatList{} }).
//	    Swipeable("chat/{id}", func(e *navigation.Entry) any {
//	        id, _ := e.Arg("id")
//	        return chatScreen{id: id.(string)}
//	    }, navigation.WithTitle("chat_title")).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	nav, err := navigation.New(graph, "chats")
//	if err != nil {
//	    return err
//	}
//
//	unsubscribe := nav.Subscribe(func(s navigation.Snapshot) {
//	    // Re-render every page; snapshots carry no diff.
//	})
//	defer unsubscribe()
//
//	nav.MustNavigate("chat/42", nil) // stack: chats, chat/42
//	nav.Pop()                        // stack: chats
//	nav.Pop()                        // false: the start entry stays
//
// # Snapshots
//
// A Snapshot is never mutated. Pushing or popping builds a new backing slice,
// so a snapshot handed to a renderer stays valid for as long as it is held.
package navigation
