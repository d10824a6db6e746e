// Command worldsim runs the interactive household/firm/market economy
// simulator described by the kernel packages under internal/.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Shafin2954/cppConomy-sub000/internal/clicmd"
	"github.com/Shafin2954/cppConomy-sub000/internal/sim"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	world := sim.NewDefaultWorld()
	slog.Info("world initialized",
		"run_id", world.RunID,
		"seed", sim.DefaultSeed,
		"consumers", len(world.Consumers),
		"laborers", len(world.Laborers),
		"farmers", len(world.Farmers),
		"firms", len(world.Firms),
		"markets", len(world.Markets),
	)

	dispatcher := clicmd.NewDispatcher(world)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Fprintln(os.Stderr, "worldsim ready. type a command, or \"exit\" to quit.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if interactive {
			fmt.Fprint(os.Stderr, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := clicmd.Parse(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if cmd == nil {
			continue
		}
		if cmd.Name == "exit" || cmd.Name == "quit" {
			break
		}

		out, err := dispatcher.Execute(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("input scanner failed", "error", err)
		os.Exit(1)
	}
}
