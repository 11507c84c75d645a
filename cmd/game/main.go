package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Hect0r3rd/waterdrop/internal/audio"
	"github.com/Hect0r3rd/waterdrop/internal/config"
	"github.com/Hect0r3rd/waterdrop/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	sound := audio.NewManager()
	if err := sound.Init(); err != nil {
		// Keep playing without sound on machines with no audio device.
		fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		sound = nil
	} else {
		defer sound.Close()
	}

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Audio: sound,
		Prefs: config.DefaultPrefs(),
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
