package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starship/internal/frame"
	"github.com/vovakirdan/starship/internal/platform/tui"
)

var framesCmd = &cobra.Command{
	Use:   "frames [dir]",
	Short: "List and preview rocket frame art",
	Long: `Load the rocket animation frames and show each one with its bounding
box. Without an argument the --frames directory is used, falling back to
~/.starship/frames and then the built-in rocket.

Frames cycle in file name order. Every *.txt file in the directory is one
frame; blank cells are transparent.

Examples:
  starship frames
  starship frames ./my-rocket`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFrames,
}

func runFrames(_ *cobra.Command, args []string) error {
	dir := flagFrames
	if len(args) == 1 {
		dir = args[0]
	}

	frames, err := frame.Load(dir)
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderFrameTable(frames))
	fmt.Println()
	fmt.Println(tui.RenderFramePreviews(frames))
	return nil
}
