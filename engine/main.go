package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/player"
)

var (
	configFile = flag.String("f", "", "the config file, defaults apply when empty")
	inputFile  = flag.String("in", "-", "the game state json, - for stdin")
	progress   = flag.String("progress", "OFF", "show search progress")
)

type Config struct {
	player.Config
	Log logx.LogConf
}

func main() {
	flag.Parse()

	var c Config
	if *configFile != "" {
		conf.MustLoad(*configFile, &c)
	} else if err := conf.FillDefault(&c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logx.MustSetup(c.Log)
	if c.Log.Mode == "console" {
		// stdout carries the move only.
		logx.SetWriter(logx.NewWriter(os.Stderr))
	}
	defer logx.Close()

	in := os.Stdin
	if *inputFile != "-" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logx.Must(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(context.Background(), c, in, os.Stdout, model.NewSwitch(*progress)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, player.ErrNoLegalMoves) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run reads one game state from in and writes the chosen move to out as
// "row col orientation".
func run(ctx context.Context, c Config, in io.Reader, out io.Writer, showProgress model.Switch) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	g, err := message.NewGameState(data)
	if err != nil {
		return err
	}

	var options []assess.Option
	if showProgress {
		bar := model.NewBar(c.MaxDepth, "searching")
		defer bar.Close()
		options = append(options, assess.WithProgress(bar.Depth))
	}

	ctx = logx.ContextWithFields(ctx, logx.Field("game", message.GameUidOr(g.GameUid)))
	m, err := player.NewPlayer(c.Config, options...).MakeMove(ctx, g.Snapshot())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%d %d %s\n", m.Row, m.Col, m.Orientation)
	return err
}
