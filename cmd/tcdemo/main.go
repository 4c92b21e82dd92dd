// Command tcdemo renders a live CPU-utilization chart in the terminal.
//
// All presentation concerns — screen clearing, frame pacing, styling —
// live here; the termchart core only produces the text block.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/termchart/termchart"
)

func main() {
	var (
		height   = flag.Int("height", 12, "chart height in rows")
		width    = flag.Int("width", 70, "chart width in columns")
		interval = flag.Duration("interval", time.Second, "sampling interval")
		ascii    = flag.Bool("ascii", false, "use the ASCII-only symbol set")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []termchart.Option{
		termchart.WithHeight(*height),
		termchart.WithWidth(*width),
		termchart.WithRange(0, 100),
		termchart.WithLabelFormat("%.0f"),
		termchart.WithLabelTicks(5),
	}
	if *ascii {
		opts = append(opts, termchart.WithASCIISymbols())
	}
	cfg := termchart.NewConfig(opts...)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	title := lipgloss.NewStyle().Bold(true).Render("CPU utilization %")

	history := make([]float64, 0, *width)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		pct, err := cpu.PercentWithContext(ctx, 0, false)
		if err != nil {
			log.Fatalf("sampling cpu: %v", err)
		}
		if len(pct) > 0 {
			history = append(history, pct[0])
			if len(history) > *width {
				history = history[len(history)-*width:]
			}
		}

		chart, err := termchart.RenderWithConfig(history, cfg)
		if err != nil {
			log.Fatalf("rendering: %v", err)
		}
		fmt.Print("\033[H\033[2J")
		fmt.Println(frame.Render(title + "\n" + chart))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
