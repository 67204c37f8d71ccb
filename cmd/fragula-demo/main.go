// Command fragula-demo shows a chat list and chat screens as swipeable pages.
//
// Enter opens the next chat, Escape/Backspace or a swipe to the right goes back.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fragula/pkg/fragula"
	"github.com/BrandonKowalski/fragula/pkg/fragula/host"
	"github.com/BrandonKowalski/fragula/pkg/fragula/navigation"
)

var messages = map[string][]byte{
	"active.en.toml": []byte(`
chats_title = "Chats"
chat_title = "Conversation"
`),
	"active.de.toml": []byte(`
chats_title = "Unterhaltungen"
chat_title = "Unterhaltung"
`),
}

var palette = []color.RGBA{
	{R: 0x26, G: 0x46, B: 0x53, A: 0xFF},
	{R: 0x2A, G: 0x9D, B: 0x8F, A: 0xFF},
	{R: 0xE9, G: 0xC4, B: 0x6A, A: 0xFF},
	{R: 0xF4, G: 0xA2, B: 0x61, A: 0xFF},
	{R: 0xE7, G: 0x6F, B: 0x51, A: 0xFF},
}

func main() {
	var (
		configPath string
		logPath    string
		stateDir   string
	)

	cmd := &cobra.Command{
		Use:   "fragula-demo",
		Short: "Swipe-back navigation demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, logPath, stateDir)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&logPath, "log", "", "path to a log file")
	cmd.Flags().StringVar(&stateDir, "state-dir", "", "directory to keep the back-stack in between runs")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath, logPath, stateDir string) error {
	if err := fragula.Init(fragula.Options{
		WindowTitle: "Fragula",
		LogPath:     logPath,
		ConfigPath:  configPath,
	}); err != nil {
		return err
	}
	defer fragula.Close()

	logger := fragula.GetLogger()

	graph, err := navigation.NewGraphBuilder().
		Swipeable("chats", chatList, navigation.WithTitle("chats_title")).
		Swipeable("chat/{id}", chat,
			navigation.WithTitle("chat_title"),
			navigation.WithArgument("unread", navigation.Argument{Default: int64(0)})).
		Build()
	if err != nil {
		return err
	}

	nav, err := navigation.New(graph, "chats")
	if err != nil {
		return err
	}

	opened := 0
	settings := fragula.NavHostSettings{
		Messages:          messages,
		UpdateWindowTitle: true,
		OnEvent: func(event sdl.Event) {
			e, ok := event.(*sdl.KeyboardEvent)
			if !ok || e.Type != sdl.KEYDOWN || e.Repeat != 0 || e.Keysym.Sym != sdl.K_RETURN {
				return
			}
			opened++
			nav.MustNavigate(fmt.Sprintf("chat/%d", opened), nil)
			logger.Info("Opened chat", "id", opened, "depth", nav.BackStack().Len())
		},
	}
	if stateDir != "" {
		settings.StateStore = host.FileStateStore{Dir: stateDir}
	}

	err = fragula.NavHost(nav, settings)
	if fragula.IsCancelled(err) {
		logger.Info("Back pressed on the chat list, exiting")
		return nil
	}
	return err
}

func chatList(entry *navigation.Entry) any {
	return host.ScreenFunc(func(c host.Canvas, bounds image.Rectangle) {
		c.FillRect(bounds, color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF})

		rowHeight := bounds.Dy() / 8
		for i := range 8 {
			row := image.Rect(bounds.Min.X, bounds.Min.Y+i*rowHeight, bounds.Max.X, bounds.Min.Y+(i+1)*rowHeight-2)
			c.FillRect(row, palette[i%len(palette)])
		}
	})
}

func chat(entry *navigation.Entry) any {
	id, _ := entry.Arg("id")
	shade := palette[len(fmt.Sprint(id))%len(palette)]
	if s, ok := id.(string); ok && s != "" {
		shade = palette[int(s[len(s)-1])%len(palette)]
	}

	return host.ScreenFunc(func(c host.Canvas, bounds image.Rectangle) {
		c.FillRect(bounds, shade)

		header := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+bounds.Dy()/10)
		c.FillRect(header, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
	})
}
