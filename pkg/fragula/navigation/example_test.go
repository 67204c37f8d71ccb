package navigation_test

import (
	"fmt"

	"github.com/BrandonKowalski/fragula/pkg/fragula/navigation"
)

// Example demonstrates registering destinations and moving along the back-stack.
func Example() {
	graph, err := navigation.NewGraphBuilder().
		Swipeable("chats", func(e *navigation.Entry) any { return "chat list" }).
		Swipeable("chat/{id}", func(e *navigation.Entry) any {
			id, _ := e.Arg("id")
			return fmt.Sprintf("chat %v", id)
		}).
		Build()
	if err != nil {
		panic(err)
	}

	nav, err := navigation.New(graph, "chats")
	if err != nil {
		panic(err)
	}

	nav.Subscribe(func(s navigation.Snapshot) {
		fmt.Printf("depth %d, showing %v\n", s.Len(), s.Top().Content())
	})

	nav.MustNavigate("chat/42", nil)
	fmt.Println("popped:", nav.Pop())
	fmt.Println("popped at root:", nav.Pop())

	// Output:
	// depth 2, showing chat 42
	// depth 1, showing chat list
	// popped: true
	// popped at root: false
}

// Example_legacy shows the flat record older call sites expect.
func Example_legacy() {
	graph, _ := navigation.NewGraphBuilder().
		Swipeable("home", nil).
		Swipeable("profile/{user}", nil, navigation.WithClassName("ProfileFragment")).
		Build()

	nav, _ := navigation.New(graph, "home")
	legacy := nav.MustNavigate("profile/ada", nil).Legacy()

	fmt.Println(legacy.ClassName, legacy.Arguments["user"])

	// Output:
	// ProfileFragment ada
}
