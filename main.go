package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/spotui/internal/app"
	"github.com/llehouerou/spotui/internal/config"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/errmsg"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/logging"
	"github.com/llehouerou/spotui/internal/spotify"
)

var errNoToken = errors.New("no access token: set service.access_token or $SPOTUI_ACCESS_TOKEN")

type runtime struct {
	model app.Model
	log   zerolog.Logger
	close io.Closer
	stop  context.CancelFunc
}

func setup() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if !cfg.HasAccessToken() {
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, errNoToken))
	}

	logCfg := cfg.GetLogConfig()
	log, closer, err := logging.Open(logCfg.File, logCfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	bindings, err := keymap.Override(keymap.Bindings, cfg.Keys)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	svcCfg := cfg.GetServiceConfig()
	searchCfg := cfg.GetSearchConfig()
	client := spotify.New(svcCfg.BaseURL, svcCfg.AccessToken, svcCfg.Timeout())
	d := dispatch.New(client, dispatch.Options{
		Market:        svcCfg.Market,
		SmallLimit:    searchCfg.SmallLimit,
		LargeLimit:    searchCfg.LargeLimit,
		PlaylistOwner: svcCfg.PlaylistOwner,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	log.Info().
		Str("base_url", svcCfg.BaseURL).
		Str("market", svcCfg.Market).
		Msg("starting")

	return &runtime{
		model: app.New(ctx, d, keymap.NewResolver(bindings), log),
		log:   log,
		close: closer,
		stop:  cancel,
	}, nil
}

func main() {
	rt, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(rt.model, tea.WithAltScreen())
	_, err = p.Run()
	rt.stop()
	if err != nil {
		rt.log.Error().Err(err).Msg("program exited")
	}
	rt.close.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
