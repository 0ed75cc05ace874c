package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/x444dyx/pulse/internal/config"
	"github.com/x444dyx/pulse/internal/loop"
	"github.com/x444dyx/pulse/internal/shape"
	"github.com/x444dyx/pulse/internal/store"
	"golang.org/x/term"
)

const defaultShareURL = "https://pulse.example.com"

func main() {
	statePath := config.GetEnv("PULSE_STATE_FILE", "")
	if statePath == "" {
		if p, err := store.DefaultPath(); err == nil {
			statePath = p
		}
	}

	// A broken or unset config dir only loses durability; the store
	// degrades to defaults and drops writes.
	st := store.Open(statePath)
	saved := st.Load()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Shape:    shape.ID(saved.Shape),
		Best:     saved.Best,
		ShareURL: config.GetEnv("PULSE_URL", defaultShareURL),
		OnShapeChange: func(id shape.ID) {
			saved.Shape = string(id)
			_ = st.Save(saved)
		},
		OnBestChange: func(best int) {
			saved.Best = best
			_ = st.Save(saved)
		},
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
