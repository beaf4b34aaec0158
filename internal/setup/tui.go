// Package setup implements the interactive configuration wizard.
package setup

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantfold/optzone/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)
)

// RunTUI walks the user through analyzer settings and writes config.yaml.
func RunTUI() error {
	cfg := config.Default()
	binsStr := strconv.Itoa(cfg.Profile.Bins)
	var confirm bool

	fmt.Println(headerStyle.Render("OPTZONE CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Volume profile settings for your instrument.\n"))

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ticker Symbol").
				Description("Yahoo style for futures (CL=F), exchange style for crypto (BTCUSDT)").
				Value(&cfg.Symbol),
			huh.NewSelect[string]().
				Title("Candle Source").
				Options(
					huh.NewOption("Yahoo Finance", "yahoo"),
					huh.NewOption("Binance", "binance"),
					huh.NewOption("Bybit", "bybit"),
				).
				Value(&cfg.Platform),
			huh.NewInput().
				Title("Lookback Period").
				Description("e.g. 5d, 2w, 1mo").
				Value(&cfg.Period),
			huh.NewInput().
				Title("Bar Interval").
				Description("e.g. 5m, 15m, 1h").
				Value(&cfg.Interval),
			huh.NewInput().
				Title("Price Bins").
				Description("Histogram resolution").
				Value(&binsStr),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write config.yaml?").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	bins, err := strconv.Atoi(binsStr)
	if err != nil {
		return fmt.Errorf("price bins must be an integer: %w", err)
	}
	cfg.Profile.Bins = bins

	if err := cfg.Validate(); err != nil {
		return err
	}

	if !confirm {
		fmt.Println("aborted, nothing written")
		return nil
	}

	if err := cfg.Save("config.yaml"); err != nil {
		return err
	}
	fmt.Println("config.yaml written, run optzone --config config.yaml")

	return nil
}
